package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bgdnlp/facatura/internal/party/domain"
)

type companyRepo struct{}

func ProvideCompany() domain.CompanyRepository {
	return &companyRepo{}
}

func (r *companyRepo) Insert(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).Create(company).Error
}

func (r *companyRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Company, error) {
	var company domain.Company
	err := db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) FindByFiscalCode(ctx context.Context, db *gorm.DB, fiscalCode string) (*domain.Company, error) {
	var company domain.Company
	err := db.WithContext(ctx).First(&company, "fiscal_code = ?", fiscalCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) List(ctx context.Context, db *gorm.DB, filter domain.ListPartyFilter) ([]*domain.Company, error) {
	var companies []*domain.Company
	stmt := db.WithContext(ctx).Model(&domain.Company{})
	if filter.City != "" {
		stmt = stmt.Where("city = ?", filter.City)
	}
	if filter.County != "" {
		stmt = stmt.Where("county = ?", filter.County)
	}
	if filter.Country != "" {
		stmt = stmt.Where("country = ?", filter.Country)
	}
	err := stmt.Order("id asc").Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepo) Save(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).Save(company).Error
}

func (r *companyRepo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Delete(&domain.Company{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

type clientRepo struct{}

func ProvideClient() domain.ClientRepository {
	return &clientRepo{}
}

func (r *clientRepo) Insert(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).Create(client).Error
}

func (r *clientRepo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Client, error) {
	var client domain.Client
	err := db.WithContext(ctx).First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) FindByFiscalCode(ctx context.Context, db *gorm.DB, fiscalCode string) (*domain.Client, error) {
	var client domain.Client
	err := db.WithContext(ctx).First(&client, "fiscal_code = ?", fiscalCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context, db *gorm.DB, filter domain.ListPartyFilter) ([]*domain.Client, error) {
	var clients []*domain.Client
	stmt := db.WithContext(ctx).Model(&domain.Client{})
	if filter.City != "" {
		stmt = stmt.Where("city = ?", filter.City)
	}
	if filter.County != "" {
		stmt = stmt.Where("county = ?", filter.County)
	}
	if filter.Country != "" {
		stmt = stmt.Where("country = ?", filter.Country)
	}
	err := stmt.Order("id asc").Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepo) Save(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).Save(client).Error
}

func (r *clientRepo) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	result := db.WithContext(ctx).Delete(&domain.Client{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
