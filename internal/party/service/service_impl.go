package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/apperr"
	"github.com/bgdnlp/facatura/internal/clock"
	"github.com/bgdnlp/facatura/internal/party/domain"
	"github.com/bgdnlp/facatura/internal/validate"
	"github.com/bgdnlp/facatura/pkg/db"
)

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	clock     clock.Clock
	validate  *validator.Validate
	companies domain.CompanyRepository
	clients   domain.ClientRepository
}

func New(gdb *gorm.DB, logger *zap.Logger, clk clock.Clock, companies domain.CompanyRepository, clients domain.ClientRepository) domain.Service {
	return &Service{
		db:        gdb,
		log:       logger.Named("party.service"),
		clock:     clk,
		validate:  validate.New(),
		companies: companies,
		clients:   clients,
	}
}

func (s *Service) CreateCompany(ctx context.Context, req domain.CreateCompanyRequest) (domain.Company, error) {
	company := domain.Company{
		Party: domain.Party{
			Name:               req.Name,
			Address:            req.Address,
			City:               req.City,
			County:             req.County,
			PostalCode:         req.PostalCode,
			Country:            req.Country,
			RegistrationNumber: req.RegistrationNumber,
			FiscalCode:         req.FiscalCode,
			VATNumber:          req.VATNumber,
			BankName:           req.BankName,
			BankAccount:        req.BankAccount,
			Email:              req.Email,
			Phone:              req.Phone,
		},
		Website:  req.Website,
		LogoPath: req.LogoPath,
	}
	normalizeParty(&company.Party)
	company.Website = strings.TrimSpace(company.Website)
	company.LogoPath = strings.TrimSpace(company.LogoPath)

	if err := s.validateCompany(company); err != nil {
		return domain.Company{}, err
	}

	existing, err := s.companies.FindByFiscalCode(ctx, s.db, company.FiscalCode)
	if err != nil {
		return domain.Company{}, err
	}
	if existing != nil {
		return domain.Company{}, apperr.Validation("fiscal code '%s' already exists", company.FiscalCode)
	}

	now := s.clock.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	if err := s.companies.Insert(ctx, s.db, &company); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Company{}, apperr.Validation("fiscal code '%s' already exists", company.FiscalCode)
		}
		return domain.Company{}, err
	}

	s.log.Info("company created", zap.Int64("id", company.ID), zap.String("fiscal_code", company.FiscalCode))
	return company, nil
}

func (s *Service) GetCompany(ctx context.Context, id int64) (domain.Company, error) {
	if id <= 0 {
		return domain.Company{}, apperr.Validation("invalid company id")
	}
	item, err := s.companies.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Company{}, err
	}
	if item == nil {
		return domain.Company{}, apperr.NotFound("company %d not found", id)
	}
	return *item, nil
}

func (s *Service) GetCompanyByFiscalCode(ctx context.Context, fiscalCode string) (domain.Company, error) {
	code := strings.ToUpper(strings.TrimSpace(fiscalCode))
	if code == "" {
		return domain.Company{}, apperr.Validation("fiscal code is required")
	}
	item, err := s.companies.FindByFiscalCode(ctx, s.db, code)
	if err != nil {
		return domain.Company{}, err
	}
	if item == nil {
		return domain.Company{}, apperr.NotFound("company with fiscal code '%s' not found", code)
	}
	return *item, nil
}

func (s *Service) UpdateCompany(ctx context.Context, id int64, req domain.UpdateCompanyRequest) (domain.Company, error) {
	if id <= 0 {
		return domain.Company{}, apperr.Validation("invalid company id")
	}
	item, err := s.companies.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Company{}, err
	}
	if item == nil {
		return domain.Company{}, apperr.NotFound("company %d not found", id)
	}

	company := *item
	assign(&company.Name, req.Name)
	assign(&company.Address, req.Address)
	assign(&company.City, req.City)
	assign(&company.County, req.County)
	assign(&company.PostalCode, req.PostalCode)
	assign(&company.Country, req.Country)
	assign(&company.RegistrationNumber, req.RegistrationNumber)
	assign(&company.FiscalCode, req.FiscalCode)
	assign(&company.VATNumber, req.VATNumber)
	assign(&company.BankName, req.BankName)
	assign(&company.BankAccount, req.BankAccount)
	assign(&company.Email, req.Email)
	assign(&company.Phone, req.Phone)
	assign(&company.Website, req.Website)
	assign(&company.LogoPath, req.LogoPath)
	normalizeParty(&company.Party)

	if err := s.validateCompany(company); err != nil {
		return domain.Company{}, err
	}

	if company.FiscalCode != item.FiscalCode {
		existing, err := s.companies.FindByFiscalCode(ctx, s.db, company.FiscalCode)
		if err != nil {
			return domain.Company{}, err
		}
		if existing != nil && existing.ID != company.ID {
			return domain.Company{}, apperr.Validation("fiscal code '%s' already exists", company.FiscalCode)
		}
	}

	if err := s.companies.Save(ctx, s.db, &company); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Company{}, apperr.Validation("fiscal code '%s' already exists", company.FiscalCode)
		}
		return domain.Company{}, err
	}

	return company, nil
}

func (s *Service) DeleteCompany(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Validation("invalid company id")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		err := tx.Raw(
			`SELECT COUNT(*) FROM invoices WHERE company_id = ?`, id,
		).Scan(&refs).Error
		if err != nil {
			return err
		}
		if refs > 0 {
			return apperr.Conflict("company %d is referenced by %d invoice(s)", id, refs)
		}

		if err := tx.Exec(
			`DELETE FROM bank_accounts WHERE owner_type = 'company' AND owner_id = ?`, id,
		).Error; err != nil {
			return err
		}

		rows, err := s.companies.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.NotFound("company %d not found", id)
		}

		s.log.Info("company deleted", zap.Int64("id", id))
		return nil
	})
}

func (s *Service) ListCompanies(ctx context.Context, req domain.ListPartyRequest) ([]domain.Company, error) {
	items, err := s.companies.List(ctx, s.db, listFilter(req))
	if err != nil {
		return nil, err
	}
	companies := make([]domain.Company, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		companies = append(companies, *item)
	}
	return companies, nil
}

func (s *Service) CreateClient(ctx context.Context, req domain.CreateClientRequest) (domain.Client, error) {
	client := domain.Client{
		Party: domain.Party{
			Name:               req.Name,
			Address:            req.Address,
			City:               req.City,
			County:             req.County,
			PostalCode:         req.PostalCode,
			Country:            req.Country,
			RegistrationNumber: req.RegistrationNumber,
			FiscalCode:         req.FiscalCode,
			VATNumber:          req.VATNumber,
			BankName:           req.BankName,
			BankAccount:        req.BankAccount,
			Email:              req.Email,
			Phone:              req.Phone,
		},
		ContactPerson: req.ContactPerson,
		Notes:         req.Notes,
	}
	normalizeParty(&client.Party)
	client.ContactPerson = strings.TrimSpace(client.ContactPerson)
	client.Notes = strings.TrimSpace(client.Notes)

	if err := validate.BadRequest(s.validate.Struct(client)); err != nil {
		return domain.Client{}, err
	}

	existing, err := s.clients.FindByFiscalCode(ctx, s.db, client.FiscalCode)
	if err != nil {
		return domain.Client{}, err
	}
	if existing != nil {
		return domain.Client{}, apperr.Validation("fiscal code '%s' already exists", client.FiscalCode)
	}

	now := s.clock.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := s.clients.Insert(ctx, s.db, &client); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Client{}, apperr.Validation("fiscal code '%s' already exists", client.FiscalCode)
		}
		return domain.Client{}, err
	}

	s.log.Info("client created", zap.Int64("id", client.ID), zap.String("fiscal_code", client.FiscalCode))
	return client, nil
}

func (s *Service) GetClient(ctx context.Context, id int64) (domain.Client, error) {
	if id <= 0 {
		return domain.Client{}, apperr.Validation("invalid client id")
	}
	item, err := s.clients.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Client{}, err
	}
	if item == nil {
		return domain.Client{}, apperr.NotFound("client %d not found", id)
	}
	return *item, nil
}

func (s *Service) GetClientByFiscalCode(ctx context.Context, fiscalCode string) (domain.Client, error) {
	code := strings.ToUpper(strings.TrimSpace(fiscalCode))
	if code == "" {
		return domain.Client{}, apperr.Validation("fiscal code is required")
	}
	item, err := s.clients.FindByFiscalCode(ctx, s.db, code)
	if err != nil {
		return domain.Client{}, err
	}
	if item == nil {
		return domain.Client{}, apperr.NotFound("client with fiscal code '%s' not found", code)
	}
	return *item, nil
}

func (s *Service) UpdateClient(ctx context.Context, id int64, req domain.UpdateClientRequest) (domain.Client, error) {
	if id <= 0 {
		return domain.Client{}, apperr.Validation("invalid client id")
	}
	item, err := s.clients.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Client{}, err
	}
	if item == nil {
		return domain.Client{}, apperr.NotFound("client %d not found", id)
	}

	client := *item
	assign(&client.Name, req.Name)
	assign(&client.Address, req.Address)
	assign(&client.City, req.City)
	assign(&client.County, req.County)
	assign(&client.PostalCode, req.PostalCode)
	assign(&client.Country, req.Country)
	assign(&client.RegistrationNumber, req.RegistrationNumber)
	assign(&client.FiscalCode, req.FiscalCode)
	assign(&client.VATNumber, req.VATNumber)
	assign(&client.BankName, req.BankName)
	assign(&client.BankAccount, req.BankAccount)
	assign(&client.Email, req.Email)
	assign(&client.Phone, req.Phone)
	assign(&client.ContactPerson, req.ContactPerson)
	assign(&client.Notes, req.Notes)
	normalizeParty(&client.Party)

	if err := validate.BadRequest(s.validate.Struct(client)); err != nil {
		return domain.Client{}, err
	}

	if client.FiscalCode != item.FiscalCode {
		existing, err := s.clients.FindByFiscalCode(ctx, s.db, client.FiscalCode)
		if err != nil {
			return domain.Client{}, err
		}
		if existing != nil && existing.ID != client.ID {
			return domain.Client{}, apperr.Validation("fiscal code '%s' already exists", client.FiscalCode)
		}
	}

	if err := s.clients.Save(ctx, s.db, &client); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Client{}, apperr.Validation("fiscal code '%s' already exists", client.FiscalCode)
		}
		return domain.Client{}, err
	}

	return client, nil
}

func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Validation("invalid client id")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		err := tx.Raw(
			`SELECT COUNT(*) FROM invoices WHERE client_id = ?`, id,
		).Scan(&refs).Error
		if err != nil {
			return err
		}
		if refs > 0 {
			return apperr.Conflict("client %d is referenced by %d invoice(s)", id, refs)
		}

		if err := tx.Exec(
			`DELETE FROM bank_accounts WHERE owner_type = 'client' AND owner_id = ?`, id,
		).Error; err != nil {
			return err
		}

		rows, err := s.clients.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.NotFound("client %d not found", id)
		}

		s.log.Info("client deleted", zap.Int64("id", id))
		return nil
	})
}

func (s *Service) ListClients(ctx context.Context, req domain.ListPartyRequest) ([]domain.Client, error) {
	items, err := s.clients.List(ctx, s.db, listFilter(req))
	if err != nil {
		return nil, err
	}
	clients := make([]domain.Client, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		clients = append(clients, *item)
	}
	return clients, nil
}

// validateCompany adds the one rule the shared Party tags cannot express:
// issuers must carry a trade registry number, recipients need not.
func (s *Service) validateCompany(company domain.Company) error {
	if err := validate.BadRequest(s.validate.Struct(company)); err != nil {
		return err
	}
	if company.RegistrationNumber == "" {
		return apperr.Validation("field 'registration_number' is required")
	}
	return nil
}

func normalizeParty(p *domain.Party) {
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	p.City = strings.TrimSpace(p.City)
	p.County = strings.TrimSpace(p.County)
	p.PostalCode = strings.TrimSpace(p.PostalCode)
	p.Country = strings.TrimSpace(p.Country)
	if p.Country == "" {
		p.Country = "Romania"
	}
	p.RegistrationNumber = strings.TrimSpace(p.RegistrationNumber)
	p.FiscalCode = strings.ToUpper(strings.TrimSpace(p.FiscalCode))
	p.VATNumber = strings.ToUpper(strings.TrimSpace(p.VATNumber))
	p.BankName = strings.TrimSpace(p.BankName)
	p.BankAccount = strings.TrimSpace(p.BankAccount)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func listFilter(req domain.ListPartyRequest) domain.ListPartyFilter {
	return domain.ListPartyFilter{
		City:    strings.TrimSpace(req.City),
		County:  strings.TrimSpace(req.County),
		Country: strings.TrimSpace(req.Country),
	}
}
