package memory

import (
	"context"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/repository"
)

type payrollRepository struct {
	db *DB
}

// NewPayrollRepository returns the in-memory payroll store.
func NewPayrollRepository(db *DB) repository.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) FindByID(_ context.Context, id int64) (*entity.PayrollRecord, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	record, ok := r.db.payrolls[id]
	if !ok {
		return nil, repository.ErrPayrollRecordNotFound
	}

	return record.Clone(), nil
}

func (r *payrollRepository) FindByEmployeeID(_ context.Context, employeeID int64) ([]*entity.PayrollRecord, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	records := sortedValues(r.db.payrolls, (*entity.PayrollRecord).Clone)
	out := records[:0]
	for _, record := range records {
		if record.EmployeeID == employeeID {
			out = append(out, record)
		}
	}

	return out, nil
}

func (r *payrollRepository) Create(_ context.Context, record *entity.PayrollRecord) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.lastPayrollID++
	record.ID = r.db.lastPayrollID
	r.db.payrolls[record.ID] = record.Clone()

	return nil
}

func (r *payrollRepository) Update(_ context.Context, record *entity.PayrollRecord) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.payrolls[record.ID]; !ok {
		return repository.ErrPayrollRecordNotFound
	}
	r.db.payrolls[record.ID] = record.Clone()

	return nil
}

func (r *payrollRepository) List(_ context.Context) ([]*entity.PayrollRecord, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedValues(r.db.payrolls, (*entity.PayrollRecord).Clone), nil
}
