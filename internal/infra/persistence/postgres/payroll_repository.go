package postgres

import (
	"context"

	"hotelhrm/internal/domain/entity"
	domainerrors "hotelhrm/internal/domain/errors"
	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// payrollRepository implements the domain.PayrollRepository interface using GORM.
type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository is the constructor for payrollRepository.
func NewPayrollRepository(db *gorm.DB) repository.PayrollRepository {
	return &payrollRepository{db: db}
}

func (repo *payrollRepository) FindByID(ctx context.Context, id int64) (*entity.PayrollRecord, error) {
	var recordM model.PayrollRecordModel
	if err := repo.db.WithContext(ctx).First(&recordM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPayrollRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find payroll record by id")
	}

	return toPayrollDomain(&recordM), nil
}

func (repo *payrollRepository) FindByEmployeeID(ctx context.Context, employeeID int64) ([]*entity.PayrollRecord, error) {
	var recordMs []*model.PayrollRecordModel
	err := repo.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("id").
		Find(&recordMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payroll records by employee")
	}

	return toPayrollDomains(recordMs), nil
}

func (repo *payrollRepository) Create(ctx context.Context, record *entity.PayrollRecord) error {
	recordM := fromPayrollDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create payroll record")
	}

	record.ID = recordM.ID

	return nil
}

func (repo *payrollRepository) Update(ctx context.Context, record *entity.PayrollRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PayrollRecordModel{}).
		Where("id = ?", record.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(fromPayrollDomain(record))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payroll record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPayrollRecordNotFound
	}

	return nil
}

func (repo *payrollRepository) List(ctx context.Context) ([]*entity.PayrollRecord, error) {
	var recordMs []*model.PayrollRecordModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&recordMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payroll records")
	}

	return toPayrollDomains(recordMs), nil
}

func toPayrollDomains(data []*model.PayrollRecordModel) []*entity.PayrollRecord {
	records := make([]*entity.PayrollRecord, 0, len(data))
	for _, recordM := range data {
		records = append(records, toPayrollDomain(recordM))
	}

	return records
}

// toPayrollDomain converts a GORM PayrollRecordModel to a domain PayrollRecord entity.
func toPayrollDomain(data *model.PayrollRecordModel) *entity.PayrollRecord {
	if data == nil {
		return nil
	}

	return &entity.PayrollRecord{
		ID:             data.ID,
		EmployeeID:     data.EmployeeID,
		Employee:       toSnapshotDomain(data.Employee),
		PayPeriodStart: data.PayPeriodStart,
		PayPeriodEnd:   data.PayPeriodEnd,
		BaseSalary:     data.BaseSalary,
		Bonus:          data.Bonus,
		Deductions:     data.Deductions,
		GrossPay:       data.GrossPay,
		NetPay:         data.NetPay,
		ProcessedAt:    data.ProcessedAt,
		Status:         entity.PayrollStatus(data.Status),
	}
}

// fromPayrollDomain converts a domain PayrollRecord entity to a GORM PayrollRecordModel for persistence.
func fromPayrollDomain(data *entity.PayrollRecord) *model.PayrollRecordModel {
	if data == nil {
		return nil
	}

	return &model.PayrollRecordModel{
		ID:             data.ID,
		EmployeeID:     data.EmployeeID,
		Employee:       fromSnapshotDomain(data.Employee),
		PayPeriodStart: data.PayPeriodStart,
		PayPeriodEnd:   data.PayPeriodEnd,
		BaseSalary:     data.BaseSalary,
		Bonus:          data.Bonus,
		Deductions:     data.Deductions,
		GrossPay:       data.GrossPay,
		NetPay:         data.NetPay,
		ProcessedAt:    data.ProcessedAt,
		Status:         string(data.Status),
	}
}

func toSnapshotDomain(data *model.EmployeeSnapshot) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Department:  data.Department,
		Position:    data.Position,
		HireDate:    data.HireDate,
		BaseSalary:  data.BaseSalary,
		Status:      entity.EmploymentStatus(data.Status),
	}
}

func fromSnapshotDomain(data *entity.Employee) *model.EmployeeSnapshot {
	if data == nil {
		return nil
	}

	return &model.EmployeeSnapshot{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Department:  data.Department,
		Position:    data.Position,
		HireDate:    data.HireDate,
		BaseSalary:  data.BaseSalary,
		Status:      string(data.Status),
	}
}
