package controllers

import (
	"encoding/base64"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/paatispantry/pantry-api/utils"
)

const (
	defaultMerchantName    = "Paati's Pantry"
	defaultTransactionNote = "Order Payment"
	qrCodeSize             = 300
)

// GenerateUPIQRCode builds a upi://pay URI for the checkout and returns
// it as a scannable PNG data URL. This only renders the payment request;
// settlement confirmation is out of scope.
func GenerateUPIQRCode(ctx *gin.Context) {
	var body struct {
		UPIID           string  `json:"upiId"`
		Amount          float64 `json:"amount"`
		Name            string  `json:"name"`
		TransactionNote string  `json:"transactionNote"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	upiID := body.UPIID
	if upiID == "" {
		upiID = os.Getenv("UPI_ID")
	}
	if upiID == "" {
		upiID = "paatispantry@paytm"
	}

	merchantName := body.Name
	if merchantName == "" {
		merchantName = defaultMerchantName
	}
	note := body.TransactionNote
	if note == "" {
		note = defaultTransactionNote
	}

	upiURL := utils.BuildUPIURI(upiID, merchantName, note, body.Amount)

	png, err := utils.GenerateQRCode(upiURL, qrCodeSize)
	if err != nil {
		log.Println("QR code generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"qrCode": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		"upiUrl": upiURL,
		"upiId":  upiID,
	})
}
