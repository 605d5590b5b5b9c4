package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/starcoin-app/payment-core/internal/models"
	"github.com/starcoin-app/payment-core/internal/models/dto"
)

type PaymentsConfig struct {
	ExpiryOffset  time.Duration
	WalletAddress string
}

// PaymentService is the caller-facing boundary: fraud-gated creation, status
// reads that drive verification, history, and wallet pass-throughs. HTTP
// framing is the handlers' concern; this is the contract.
type PaymentService struct {
	Repo      PaymentRepo
	Validator PaymentValidator
	Verifier  TransactionVerifier
	Chain     ChainClient
	Config    PaymentsConfig
	Now       func() time.Time
}

func NewPaymentService(repo PaymentRepo, validator PaymentValidator, verifier TransactionVerifier, chain ChainClient, cfg PaymentsConfig) *PaymentService {
	if cfg.ExpiryOffset == 0 {
		cfg.ExpiryOffset = 30 * time.Minute
	}
	return &PaymentService{
		Repo:      repo,
		Validator: validator,
		Verifier:  verifier,
		Chain:     chain,
		Config:    cfg,
		Now:       time.Now,
	}
}

// CreatePaymentIntent validates and gates a new payment request, then
// persists the intent in pending state with its deeplink and deadline. The
// memo embedded in the deeplink later authenticates the on-chain transfer.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error) {
	req.Sanitize()
	payment := req.ToEntity()
	payment.TransactionID = models.NewTransactionID()
	if err := payment.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	validation, err := s.Validator.ValidatePaymentRequest(ctx, req.UserID, req.Amount, req.PackageRef)
	if err != nil {
		return nil, fmt.Errorf("validating payment request: %w", err)
	}
	if !validation.OK {
		return nil, &FraudRejectionError{Result: validation}
	}

	now := s.Now()
	payment.ExpiresAt = now.Add(s.Config.ExpiryOffset)
	payment.PaymentURL = s.Chain.BuildPaymentLink(s.Config.WalletAddress, payment.Amount, payment.Memo())

	if err := s.Repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("creating payment %s: %w", payment.TransactionID, err)
	}

	return &dto.CreatePaymentResponse{
		TransactionID: payment.TransactionID,
		PaymentURL:    payment.PaymentURL,
		ExpiresAt:     payment.ExpiresAt,
	}, nil
}

// GetPaymentStatus runs a verification pass for the transaction. A transient
// chain failure reads as "still pending"; it is never a hard failure for the
// caller.
func (s *PaymentService) GetPaymentStatus(ctx context.Context, transactionID string) (*dto.PaymentStatusResponse, error) {
	result, err := s.Verifier.VerifyTransaction(ctx, transactionID)
	if errors.Is(err, ErrChainLookup) {
		return &dto.PaymentStatusResponse{
			Status:  models.StatusPending,
			Message: "payment still pending, try again later",
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &dto.PaymentStatusResponse{
		Status:           result.Status,
		PackageActivated: result.PackageActivated,
		Message:          result.Message,
	}, nil
}

// GetPaymentHistory returns the user's payments newest first. Statuses are
// reported with lazy expiry applied, without writing.
func (s *PaymentService) GetPaymentHistory(ctx context.Context, userID string) ([]dto.PaymentSummary, error) {
	payments, err := s.Repo.GetByUser(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("loading payment history: %w", err)
	}

	now := s.Now()
	summaries := make([]dto.PaymentSummary, 0, len(*payments))
	for _, p := range *payments {
		summaries = append(summaries, dto.PaymentSummary{
			TransactionID: p.TransactionID,
			Amount:        p.Amount,
			Currency:      p.Currency,
			Status:        p.EffectiveStatus(now),
			PackageRef:    p.PackageRef,
			CreatedAt:     p.CreatedAt,
			CompletedAt:   p.CompletedAt,
		})
	}
	return summaries, nil
}

// GetWalletBalance is a read-only pass-through to the chain client.
func (s *PaymentService) GetWalletBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	if !s.Chain.IsValidAddress(address) {
		return decimal.Zero, fmt.Errorf("%w: invalid wallet address", ErrValidation)
	}
	return s.Chain.GetBalance(ctx, address)
}

func (s *PaymentService) ValidateAddress(address string) bool {
	return s.Chain.IsValidAddress(address)
}
