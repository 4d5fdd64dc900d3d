package domain

import "context"

type CreateCompanyRequest struct {
	Name               string
	Address            string
	City               string
	County             string
	PostalCode         string
	Country            string
	RegistrationNumber string
	FiscalCode         string
	VATNumber          string
	BankName           string
	BankAccount        string
	Email              string
	Phone              string
	Website            string
	LogoPath           string
}

// UpdateCompanyRequest carries only the fields to change; nil fields keep
// their stored value.
type UpdateCompanyRequest struct {
	Name               *string
	Address            *string
	City               *string
	County             *string
	PostalCode         *string
	Country            *string
	RegistrationNumber *string
	FiscalCode         *string
	VATNumber          *string
	BankName           *string
	BankAccount        *string
	Email              *string
	Phone              *string
	Website            *string
	LogoPath           *string
}

type CreateClientRequest struct {
	Name               string
	Address            string
	City               string
	County             string
	PostalCode         string
	Country            string
	RegistrationNumber string
	FiscalCode         string
	VATNumber          string
	BankName           string
	BankAccount        string
	Email              string
	Phone              string
	ContactPerson      string
	Notes              string
}

type UpdateClientRequest struct {
	Name               *string
	Address            *string
	City               *string
	County             *string
	PostalCode         *string
	Country            *string
	RegistrationNumber *string
	FiscalCode         *string
	VATNumber          *string
	BankName           *string
	BankAccount        *string
	Email              *string
	Phone              *string
	ContactPerson      *string
	Notes              *string
}

type ListPartyRequest struct {
	City    string
	County  string
	Country string
}

type ListPartyFilter struct {
	City    string
	County  string
	Country string
}

type Service interface {
	CreateCompany(ctx context.Context, req CreateCompanyRequest) (Company, error)
	GetCompany(ctx context.Context, id int64) (Company, error)
	GetCompanyByFiscalCode(ctx context.Context, fiscalCode string) (Company, error)
	UpdateCompany(ctx context.Context, id int64, req UpdateCompanyRequest) (Company, error)
	DeleteCompany(ctx context.Context, id int64) error
	ListCompanies(ctx context.Context, req ListPartyRequest) ([]Company, error)

	CreateClient(ctx context.Context, req CreateClientRequest) (Client, error)
	GetClient(ctx context.Context, id int64) (Client, error)
	GetClientByFiscalCode(ctx context.Context, fiscalCode string) (Client, error)
	UpdateClient(ctx context.Context, id int64, req UpdateClientRequest) (Client, error)
	DeleteClient(ctx context.Context, id int64) error
	ListClients(ctx context.Context, req ListPartyRequest) ([]Client, error)
}
