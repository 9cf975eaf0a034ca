package booking

import (
	"context"
	"sort"
	"sync"

	catalogRepo "salonbook/database/repository/catalog"
	customerRepo "salonbook/database/repository/customer"
	schedulerRepo "salonbook/database/repository/scheduler"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
	"salonbook/utils"
)

// In-memory repository fakes. memScheduler reproduces the store's conflict
// semantics (atomic overlap check against active bookings) behind a mutex so
// the concurrency tests exercise the same guarantee the real transaction
// provides.

type fakeStaffRepo struct {
	staff map[string]models.StaffMember
}

func (f *fakeStaffRepo) Create(_ context.Context, s *models.StaffMember) error {
	f.staff[s.ID] = *s
	return nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (*models.StaffMember, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, staffRepo.ErrNotFound
	}
	return &s, nil
}

func (f *fakeStaffRepo) GetAll(_ context.Context) ([]models.StaffMember, error) {
	out := make([]models.StaffMember, 0, len(f.staff))
	for _, s := range f.staff {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStaffRepo) UpdateWorkingHours(_ context.Context, staffID string, entries []models.WorkingHoursEntry) error {
	s, ok := f.staff[staffID]
	if !ok {
		return staffRepo.ErrNotFound
	}
	s.WorkingHours = entries
	f.staff[staffID] = s
	return nil
}

func (f *fakeStaffRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.staff[id]; !ok {
		return staffRepo.ErrNotFound
	}
	delete(f.staff, id)
	return nil
}

type fakeCatalogRepo struct {
	services map[string]models.Service
}

func (f *fakeCatalogRepo) Create(_ context.Context, svc *models.Service) error {
	f.services[svc.ID] = *svc
	return nil
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &svc, nil
}

func (f *fakeCatalogRepo) GetAll(_ context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(f.services))
	for _, svc := range f.services {
		out = append(out, svc)
	}
	return out, nil
}

func (f *fakeCatalogRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.services[id]; !ok {
		return catalogRepo.ErrNotFound
	}
	delete(f.services, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]models.Customer
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *models.Customer) error {
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, customerRepo.ErrNotFound
	}
	return &c, nil
}

type memScheduler struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newMemScheduler() *memScheduler {
	return &memScheduler{bookings: make(map[string]models.Booking)}
}

func (m *memScheduler) GetActiveBookings(_ context.Context, staffMemberID, date string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.StaffMemberID == staffMemberID && b.Date == date && models.IsActiveStatus(b.Status) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func (m *memScheduler) CreateBookingIfFree(_ context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.StaffMemberID != booking.StaffMemberID || b.Date != booking.Date || !models.IsActiveStatus(b.Status) {
			continue
		}
		if utils.Overlaps(booking.Start, booking.End, b.Start, b.End) {
			return schedulerRepo.ErrSlotTaken
		}
	}
	m.bookings[booking.ID] = *booking
	return nil
}

func (m *memScheduler) GetByID(_ context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, schedulerRepo.ErrNotFound
	}
	return &b, nil
}

func (m *memScheduler) ListForCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Start > out[j].Start
	})
	return out, nil
}

func (m *memScheduler) UpdateStatus(_ context.Context, id, expectedCurrent, next string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok || b.Status != expectedCurrent {
		return schedulerRepo.ErrNotFound
	}
	b.Status = next
	m.bookings[id] = b
	return nil
}

func (m *memScheduler) MarkElapsedPendingNoShow(_ context.Context, today string, nowClock int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, b := range m.bookings {
		if b.Status != models.StatusPending {
			continue
		}
		if b.Date < today || (b.Date == today && b.End <= nowClock) {
			b.Status = models.StatusNoShow
			m.bookings[id] = b
			n++
		}
	}
	return n, nil
}

// activeOverlapExists reports whether any two active bookings for the same
// staff member and date overlap. The insert path must keep this false.
func (m *memScheduler) activeOverlapExists() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]models.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		if models.IsActiveStatus(b.Status) {
			all = append(all, b)
		}
	}
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			if all[i].StaffMemberID != all[j].StaffMemberID || all[i].Date != all[j].Date {
				continue
			}
			if utils.Overlaps(all[i].Start, all[i].End, all[j].Start, all[j].End) {
				return true
			}
		}
	}
	return false
}
