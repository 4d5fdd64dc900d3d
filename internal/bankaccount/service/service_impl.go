package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/apperr"
	"github.com/bgdnlp/facatura/internal/bankaccount/domain"
	"github.com/bgdnlp/facatura/internal/clock"
	partydomain "github.com/bgdnlp/facatura/internal/party/domain"
	"github.com/bgdnlp/facatura/internal/validate"
)

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	clock     clock.Clock
	validate  *validator.Validate
	repo      domain.Repository
	companies partydomain.CompanyRepository
	clients   partydomain.ClientRepository
}

func New(
	gdb *gorm.DB,
	logger *zap.Logger,
	clk clock.Clock,
	repo domain.Repository,
	companies partydomain.CompanyRepository,
	clients partydomain.ClientRepository,
) domain.Service {
	return &Service{
		db:        gdb,
		log:       logger.Named("bankaccount.service"),
		clock:     clk,
		validate:  validate.New(),
		repo:      repo,
		companies: companies,
		clients:   clients,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateBankAccountRequest) (domain.BankAccount, error) {
	account := domain.BankAccount{
		OwnerType:     strings.ToLower(strings.TrimSpace(req.OwnerType)),
		OwnerID:       req.OwnerID,
		BankName:      strings.TrimSpace(req.BankName),
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		SwiftCode:     strings.ToUpper(strings.TrimSpace(req.SwiftCode)),
		IBAN:          strings.ToUpper(strings.TrimSpace(req.IBAN)),
		Currency:      strings.ToUpper(strings.TrimSpace(req.Currency)),
		IsDefault:     req.IsDefault,
	}
	if account.Currency == "" {
		account.Currency = "RON"
	}

	if err := validate.BadRequest(s.validate.Struct(account)); err != nil {
		return domain.BankAccount{}, err
	}

	now := s.clock.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureOwner(ctx, tx, account.OwnerType, account.OwnerID); err != nil {
			return err
		}
		if account.IsDefault {
			if err := s.repo.UnsetDefaults(ctx, tx, account.OwnerType, account.OwnerID); err != nil {
				return err
			}
		}
		return s.repo.Insert(ctx, tx, &account)
	})
	if err != nil {
		return domain.BankAccount{}, err
	}

	s.log.Info("bank account created",
		zap.Int64("id", account.ID),
		zap.String("owner_type", account.OwnerType),
		zap.Int64("owner_id", account.OwnerID))
	return account, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.BankAccount, error) {
	if id <= 0 {
		return domain.BankAccount{}, apperr.Validation("invalid bank account id")
	}
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.BankAccount{}, err
	}
	if item == nil {
		return domain.BankAccount{}, apperr.NotFound("bank account %d not found", id)
	}
	return *item, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpdateBankAccountRequest) (domain.BankAccount, error) {
	if id <= 0 {
		return domain.BankAccount{}, apperr.Validation("invalid bank account id")
	}
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.BankAccount{}, err
	}
	if item == nil {
		return domain.BankAccount{}, apperr.NotFound("bank account %d not found", id)
	}

	account := *item
	if req.BankName != nil {
		account.BankName = strings.TrimSpace(*req.BankName)
	}
	if req.AccountNumber != nil {
		account.AccountNumber = strings.TrimSpace(*req.AccountNumber)
	}
	if req.SwiftCode != nil {
		account.SwiftCode = strings.ToUpper(strings.TrimSpace(*req.SwiftCode))
	}
	if req.IBAN != nil {
		account.IBAN = strings.ToUpper(strings.TrimSpace(*req.IBAN))
	}
	if req.Currency != nil {
		account.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}
	if req.IsDefault != nil {
		account.IsDefault = *req.IsDefault
	}

	if err := validate.BadRequest(s.validate.Struct(account)); err != nil {
		return domain.BankAccount{}, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if account.IsDefault && !item.IsDefault {
			if err := s.repo.UnsetDefaults(ctx, tx, account.OwnerType, account.OwnerID); err != nil {
				return err
			}
		}
		return s.repo.Save(ctx, tx, &account)
	})
	if err != nil {
		return domain.BankAccount{}, err
	}
	return account, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Validation("invalid bank account id")
	}
	rows, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("bank account %d not found", id)
	}
	return nil
}

func (s *Service) SetDefault(ctx context.Context, id int64) (domain.BankAccount, error) {
	if id <= 0 {
		return domain.BankAccount{}, apperr.Validation("invalid bank account id")
	}
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.BankAccount{}, err
	}
	if item == nil {
		return domain.BankAccount{}, apperr.NotFound("bank account %d not found", id)
	}

	account := *item
	account.IsDefault = true

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.UnsetDefaults(ctx, tx, account.OwnerType, account.OwnerID); err != nil {
			return err
		}
		return s.repo.Save(ctx, tx, &account)
	})
	if err != nil {
		return domain.BankAccount{}, err
	}
	return account, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerType string, ownerID int64) ([]domain.BankAccount, error) {
	owner, err := normalizeOwner(ownerType, ownerID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListByOwner(ctx, s.db, owner, ownerID)
	if err != nil {
		return nil, err
	}
	accounts := make([]domain.BankAccount, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		accounts = append(accounts, *item)
	}
	return accounts, nil
}

func (s *Service) Preferred(ctx context.Context, ownerType string, ownerID int64) (*domain.BankAccount, error) {
	owner, err := normalizeOwner(ownerType, ownerID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindPreferred(ctx, s.db, owner, ownerID)
}

func (s *Service) ensureOwner(ctx context.Context, tx *gorm.DB, ownerType string, ownerID int64) error {
	switch ownerType {
	case domain.OwnerCompany:
		company, err := s.companies.FindByID(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		if company == nil {
			return apperr.NotFound("company %d not found", ownerID)
		}
	case domain.OwnerClient:
		client, err := s.clients.FindByID(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		if client == nil {
			return apperr.NotFound("client %d not found", ownerID)
		}
	}
	return nil
}

func normalizeOwner(ownerType string, ownerID int64) (string, error) {
	owner := strings.ToLower(strings.TrimSpace(ownerType))
	if owner != domain.OwnerCompany && owner != domain.OwnerClient {
		return "", apperr.Validation("owner type must be one of: company client")
	}
	if ownerID <= 0 {
		return "", apperr.Validation("invalid owner id")
	}
	return owner, nil
}
