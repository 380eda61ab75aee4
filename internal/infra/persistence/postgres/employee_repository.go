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

// employeeRepository implements the domain.EmployeeRepository interface using GORM.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (repo *employeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	var employeeM model.EmployeeModel
	if err := repo.db.WithContext(ctx).First(&employeeM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by id")
	}

	return toEmployeeDomain(&employeeM), nil
}

func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		if classifyViolation(err) == checkViolation {
			return domainerrors.ErrInvalidSalary
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	employee.ID = employeeM.ID

	return nil
}

func (repo *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("id = ?", employee.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(fromEmployeeDomain(employee))
	if result.Error != nil {
		if classifyViolation(result.Error) == checkViolation {
			return domainerrors.ErrInvalidSalary
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update employee")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

func (repo *employeeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := repo.db.WithContext(ctx).Delete(&model.EmployeeModel{}, id)
	if result.Error != nil {
		if classifyViolation(result.Error) == foreignKeyViolation {
			return false, domainerrors.ErrValidationFailed.WithDetails("employee still has payroll records")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete employee")
	}

	return result.RowsAffected > 0, nil
}

func (repo *employeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	var employeeMs []*model.EmployeeModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&employeeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	employees := make([]*entity.Employee, 0, len(employeeMs))
	for _, employeeM := range employeeMs {
		employees = append(employees, toEmployeeDomain(employeeM))
	}

	return employees, nil
}

// toEmployeeDomain converts a GORM EmployeeModel to a domain Employee entity.
func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
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

// fromEmployeeDomain converts a domain Employee entity to a GORM EmployeeModel for persistence.
func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeModel{
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
