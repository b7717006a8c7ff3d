// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"kdm_backend/internals/features/finance/payments/model"
)

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	Name  string
	Phone string
}

// ApplyDiscount memotong harga dengan persen voucher (0..100).
func ApplyDiscount(amount int64, discountPct int) int64 {
	if discountPct <= 0 {
		return amount
	}
	if discountPct >= 100 {
		return 0
	}
	return amount - (amount*int64(discountPct))/100
}

// GenerateSnapToken membuat transaksi Snap untuk pembayaran upgrade
// dan mengembalikan token + redirect URL dari midtrans.
func GenerateSnapToken(p model.PaymentModel, cust CustomerInput) (string, string, error) {
	if p.PaymentAmount <= 0 {
		return "", "", errors.New("invalid payment_amount")
	}
	if p.PaymentOrderID == "" {
		return "", "", errors.New("payment_order_id is required (used as OrderID)")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: p.PaymentAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       p.PaymentOrderID,
				Price:    p.PaymentAmount,
				Qty:      1,
				Name:     "Upgrade Premium " + p.PaymentPlan,
				Category: "Upgrade",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
