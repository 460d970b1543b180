package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessScanItem       = "item scanned successfully"
	MessageSuccessGetScanHistory = "scan history retrieved successfully"

	MessageFailedScanItem       = "failed to scan item"
	MessageFailedGetScanHistory = "failed to retrieve scan history"

	ErrScanServiceUnavailable = errors.New("scan service unavailable")
	ErrScanRejected           = errors.New("item could not be classified")
	ErrMissingScanImage       = errors.New("scan image is required")
)

const (
	ClassificationSafe        = "safe"
	ClassificationHazardous   = "hazardous"
	ClassificationNonReusable = "non_reusable"

	// XP granted per safe scan.
	ScanXPReward = 15
)

type (
	ScanItemRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image"`
	}

	// ScannedItem mirrors the classifier service response payload.
	ScannedItem struct {
		ObjectName     string  `json:"objectName"`
		Category       string  `json:"category"`
		Material       string  `json:"material,omitempty"`
		Condition      string  `json:"condition,omitempty"`
		Confidence     float64 `json:"confidence"`
		EstimatedCoins int     `json:"estimatedCoins"`
		CO2Savings     float64 `json:"co2Savings"`
		Recyclable     bool    `json:"recyclable"`
	}

	ClassifierResponse struct {
		Success        bool        `json:"success"`
		Classification string      `json:"classification"`
		Item           ScannedItem `json:"item"`
	}

	ScanResult struct {
		ID             string      `json:"id"`
		Classification string      `json:"classification"`
		Item           ScannedItem `json:"item"`
		XPEarned       int         `json:"xp_earned"`
		CoinsEarned    int         `json:"coins_earned"`
		CreatedAt      time.Time   `json:"created_at"`
	}
)
