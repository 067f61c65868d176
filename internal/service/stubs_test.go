package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/worker"

	"gorm.io/gorm"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

type stubUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.nextID++
	u.ID = r.nextID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) ListActiveWithRole(_ context.Context, role string) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.IsActive && u.HasRole(role) {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, u *model.User) error {
	delete(r.users, u.ID)
	return nil
}

func (r *stubUserRepo) AddRole(_ context.Context, u *model.User, role *model.Role) error {
	u.Roles = append(u.Roles, *role)
	return nil
}

func (r *stubUserRepo) RemoveRole(_ context.Context, u *model.User, role *model.Role) error {
	kept := u.Roles[:0]
	for _, existing := range u.Roles {
		if existing.Name != role.Name {
			kept = append(kept, existing)
		}
	}
	u.Roles = kept
	return nil
}

func (r *stubUserRepo) FindAddressByUserID(_ context.Context, userID uint) (*model.Address, error) {
	u, ok := r.users[userID]
	if !ok || u.Address == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return u.Address, nil
}

func (r *stubUserRepo) SaveAddress(_ context.Context, a *model.Address) error {
	u, ok := r.users[a.UserID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Address = a
	return nil
}

type stubRoleRepo struct {
	roles  map[uint]*model.Role
	nextID uint
}

func newStubRoleRepo(names ...string) *stubRoleRepo {
	r := &stubRoleRepo{roles: make(map[uint]*model.Role)}
	for _, name := range names {
		r.nextID++
		r.roles[r.nextID] = &model.Role{ID: r.nextID, Name: name}
	}
	return r
}

func (r *stubRoleRepo) Create(_ context.Context, role *model.Role) error {
	r.nextID++
	role.ID = r.nextID
	r.roles[role.ID] = role
	return nil
}

func (r *stubRoleRepo) FindByID(_ context.Context, id uint) (*model.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*model.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRoleRepo) List(_ context.Context) ([]model.Role, error) {
	out := make([]model.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (r *stubRoleRepo) Delete(_ context.Context, role *model.Role) error {
	delete(r.roles, role.ID)
	return nil
}

type stubAllowedUserRepo struct {
	invitations map[uint]*model.AllowedUser
	nextID      uint
}

func newStubAllowedUserRepo() *stubAllowedUserRepo {
	return &stubAllowedUserRepo{invitations: make(map[uint]*model.AllowedUser)}
}

func (r *stubAllowedUserRepo) Create(_ context.Context, a *model.AllowedUser) error {
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.invitations[a.ID] = a
	return nil
}

func (r *stubAllowedUserRepo) FindByID(_ context.Context, id uint) (*model.AllowedUser, error) {
	a, ok := r.invitations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubAllowedUserRepo) FindByEmail(_ context.Context, email string) (*model.AllowedUser, error) {
	for _, a := range r.invitations {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAllowedUserRepo) List(_ context.Context) ([]model.AllowedUser, error) {
	out := make([]model.AllowedUser, 0, len(r.invitations))
	for _, a := range r.invitations {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAllowedUserRepo) Update(_ context.Context, a *model.AllowedUser) error {
	r.invitations[a.ID] = a
	return nil
}

func (r *stubAllowedUserRepo) Delete(_ context.Context, a *model.AllowedUser) error {
	delete(r.invitations, a.ID)
	return nil
}

type stubWorkingHoursRepo struct {
	entries map[uint]*model.WorkingHours
	nextID  uint
}

func newStubWorkingHoursRepo() *stubWorkingHoursRepo {
	return &stubWorkingHoursRepo{entries: make(map[uint]*model.WorkingHours)}
}

func (r *stubWorkingHoursRepo) Create(_ context.Context, w *model.WorkingHours) error {
	r.nextID++
	w.ID = r.nextID
	r.entries[w.ID] = w
	return nil
}

func (r *stubWorkingHoursRepo) FindByID(_ context.Context, id uint) (*model.WorkingHours, error) {
	w, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return w, nil
}

func (r *stubWorkingHoursRepo) FindByUserAndDate(_ context.Context, userID uint, date time.Time) (*model.WorkingHours, error) {
	for _, w := range r.entries {
		if w.UserID == userID && sameDay(w.Date, date) {
			return w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubWorkingHoursRepo) ListByUser(_ context.Context, userID uint) ([]model.WorkingHours, error) {
	return r.collect(func(w *model.WorkingHours) bool { return w.UserID == userID }), nil
}

func (r *stubWorkingHoursRepo) ListByUserBetween(_ context.Context, userID uint, from, to time.Time) ([]model.WorkingHours, error) {
	return r.collect(func(w *model.WorkingHours) bool {
		return w.UserID == userID && !w.Date.Before(from) && !w.Date.After(to)
	}), nil
}

func (r *stubWorkingHoursRepo) ListByUserForYear(_ context.Context, userID uint, year int) ([]model.WorkingHours, error) {
	return r.collect(func(w *model.WorkingHours) bool {
		return w.UserID == userID && w.Date.Year() == year
	}), nil
}

func (r *stubWorkingHoursRepo) Update(_ context.Context, w *model.WorkingHours) error {
	r.entries[w.ID] = w
	return nil
}

func (r *stubWorkingHoursRepo) Delete(_ context.Context, w *model.WorkingHours) error {
	delete(r.entries, w.ID)
	return nil
}

func (r *stubWorkingHoursRepo) collect(keep func(*model.WorkingHours) bool) []model.WorkingHours {
	var out []model.WorkingHours
	for _, w := range r.entries {
		if keep(w) {
			out = append(out, *w)
		}
	}
	// Sorted by date, matching the repository's ORDER BY.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Date.Before(out[j-1].Date); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

type stubVakantieRepo struct {
	vakanties map[uint]*model.Vakantie
	nextID    uint
}

func newStubVakantieRepo() *stubVakantieRepo {
	return &stubVakantieRepo{vakanties: make(map[uint]*model.Vakantie)}
}

func (r *stubVakantieRepo) Create(_ context.Context, v *model.Vakantie) error {
	r.nextID++
	v.ID = r.nextID
	r.vakanties[v.ID] = v
	return nil
}

func (r *stubVakantieRepo) FindByID(_ context.Context, id uint) (*model.Vakantie, error) {
	v, ok := r.vakanties[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVakantieRepo) ListByUser(_ context.Context, userID uint) ([]model.Vakantie, error) {
	var out []model.Vakantie
	for _, v := range r.vakanties {
		if v.UserID == userID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVakantieRepo) ListAll(_ context.Context) ([]model.Vakantie, error) {
	out := make([]model.Vakantie, 0, len(r.vakanties))
	for _, v := range r.vakanties {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVakantieRepo) ListBetween(_ context.Context, start, end time.Time) ([]model.Vakantie, error) {
	var out []model.Vakantie
	for _, v := range r.vakanties {
		if !v.StartDate.After(end) && !v.EndDate.Before(start) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVakantieRepo) Delete(_ context.Context, v *model.Vakantie) error {
	delete(r.vakanties, v.ID)
	return nil
}

type stubMachineRepo struct {
	machines map[uint]*model.Machine
	nextID   uint
}

func newStubMachineRepo() *stubMachineRepo {
	return &stubMachineRepo{machines: make(map[uint]*model.Machine)}
}

func (r *stubMachineRepo) Create(_ context.Context, m *model.Machine) error {
	r.nextID++
	m.ID = r.nextID
	r.machines[m.ID] = m
	return nil
}

func (r *stubMachineRepo) FindByID(_ context.Context, id uint) (*model.Machine, error) {
	m, ok := r.machines[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMachineRepo) FindByWorkNumber(_ context.Context, workNumber string) (*model.Machine, error) {
	for _, m := range r.machines {
		if m.WorkNumber == workNumber {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMachineRepo) List(_ context.Context) ([]model.Machine, error) {
	out := make([]model.Machine, 0, len(r.machines))
	for _, m := range r.machines {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMachineRepo) Update(_ context.Context, m *model.Machine) error {
	r.machines[m.ID] = m
	return nil
}

func (r *stubMachineRepo) Delete(_ context.Context, m *model.Machine) error {
	delete(r.machines, m.ID)
	return nil
}

type stubMaintenanceRepo struct {
	issues map[uint]*model.MaintenanceIssue
	nextID uint
}

func newStubMaintenanceRepo() *stubMaintenanceRepo {
	return &stubMaintenanceRepo{issues: make(map[uint]*model.MaintenanceIssue)}
}

func (r *stubMaintenanceRepo) Create(_ context.Context, issue *model.MaintenanceIssue) error {
	r.nextID++
	issue.ID = r.nextID
	r.issues[issue.ID] = issue
	return nil
}

func (r *stubMaintenanceRepo) FindByID(_ context.Context, id uint) (*model.MaintenanceIssue, error) {
	issue, ok := r.issues[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return issue, nil
}

func (r *stubMaintenanceRepo) List(_ context.Context) ([]model.MaintenanceIssue, error) {
	out := make([]model.MaintenanceIssue, 0, len(r.issues))
	for _, issue := range r.issues {
		out = append(out, *issue)
	}
	return out, nil
}

func (r *stubMaintenanceRepo) ListByMachine(_ context.Context, machineID uint) ([]model.MaintenanceIssue, error) {
	var out []model.MaintenanceIssue
	for _, issue := range r.issues {
		if issue.MachineID == machineID {
			out = append(out, *issue)
		}
	}
	return out, nil
}

func (r *stubMaintenanceRepo) Update(_ context.Context, issue *model.MaintenanceIssue) error {
	r.issues[issue.ID] = issue
	return nil
}

func (r *stubMaintenanceRepo) Delete(_ context.Context, issue *model.MaintenanceIssue) error {
	delete(r.issues, issue.ID)
	return nil
}

type stubTankRepo struct {
	transactions map[uint]*model.TankTransaction
	nextID       uint
}

func newStubTankRepo() *stubTankRepo {
	return &stubTankRepo{transactions: make(map[uint]*model.TankTransaction)}
}

func (r *stubTankRepo) Create(_ context.Context, t *model.TankTransaction) error {
	r.nextID++
	t.ID = r.nextID
	r.transactions[t.ID] = t
	return nil
}

func (r *stubTankRepo) FindByID(_ context.Context, id uint) (*model.TankTransaction, error) {
	t, ok := r.transactions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTankRepo) FindByStartDateTime(_ context.Context, start time.Time) (*model.TankTransaction, error) {
	for _, t := range r.transactions {
		if t.StartDateTime.Equal(start) {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTankRepo) List(_ context.Context, excludeVehicle string) ([]model.TankTransaction, error) {
	var out []model.TankTransaction
	for _, t := range r.transactions {
		if t.Vehicle != nil && *t.Vehicle == excludeVehicle {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTankRepo) ListByVehicle(_ context.Context, vehicle string) ([]model.TankTransaction, error) {
	var out []model.TankTransaction
	for _, t := range r.transactions {
		if t.Vehicle != nil && *t.Vehicle == vehicle {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTankRepo) ListBetween(_ context.Context, from, to time.Time, excludeVehicle string) ([]model.TankTransaction, error) {
	var out []model.TankTransaction
	for _, t := range r.transactions {
		if t.Vehicle != nil && *t.Vehicle == excludeVehicle {
			continue
		}
		if !t.StartDateTime.Before(from) && !t.StartDateTime.After(to) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTankRepo) Delete(_ context.Context, t *model.TankTransaction) error {
	delete(r.transactions, t.ID)
	return nil
}

type stubDeviceLoginRepo struct {
	devices map[string]*model.DeviceLoginStatus
	nextID  uint
}

func newStubDeviceLoginRepo() *stubDeviceLoginRepo {
	return &stubDeviceLoginRepo{devices: make(map[string]*model.DeviceLoginStatus)}
}

func (r *stubDeviceLoginRepo) Create(_ context.Context, d *model.DeviceLoginStatus) error {
	r.nextID++
	d.ID = r.nextID
	r.devices[d.DeviceID] = d
	return nil
}

func (r *stubDeviceLoginRepo) FindByDeviceID(_ context.Context, deviceID string) (*model.DeviceLoginStatus, error) {
	d, ok := r.devices[deviceID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDeviceLoginRepo) Update(_ context.Context, d *model.DeviceLoginStatus) error {
	r.devices[d.DeviceID] = d
	return nil
}

func (r *stubDeviceLoginRepo) Delete(_ context.Context, d *model.DeviceLoginStatus) error {
	delete(r.devices, d.DeviceID)
	return nil
}

// ── Mailer / dispatcher stubs ─────────────────────────────────────────────────

type stubMailer struct {
	invitations []string
	welcomes    []string
	lastToken   string
	fail        bool
}

func (m *stubMailer) SendInvitation(to string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.invitations = append(m.invitations, to)
	return nil
}

func (m *stubMailer) SendWelcome(to, activationToken string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.welcomes = append(m.welcomes, to)
	m.lastToken = activationToken
	return nil
}

type stubDispatcher struct {
	jobs []worker.EmailJobPayload
	fail bool
}

func (d *stubDispatcher) EnqueueEmail(_ context.Context, payload worker.EmailJobPayload) error {
	if d.fail {
		return errors.New("redis unavailable")
	}
	d.jobs = append(d.jobs, payload)
	return nil
}

type stubBouwPlanRepo struct {
	plans  map[uint]*model.BouwPlan
	nextID uint
}

func newStubBouwPlanRepo() *stubBouwPlanRepo {
	return &stubBouwPlanRepo{plans: make(map[uint]*model.BouwPlan)}
}

func (r *stubBouwPlanRepo) Create(_ context.Context, p *model.BouwPlan) error {
	r.nextID++
	p.ID = r.nextID
	r.plans[p.ID] = p
	return nil
}

func (r *stubBouwPlanRepo) FindByID(_ context.Context, id uint) (*model.BouwPlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubBouwPlanRepo) List(_ context.Context) ([]model.BouwPlan, error) {
	out := make([]model.BouwPlan, 0, len(r.plans))
	for _, p := range r.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubBouwPlanRepo) ListByYear(_ context.Context, year int) ([]model.BouwPlan, error) {
	out := []model.BouwPlan{}
	for _, p := range r.plans {
		if p.Year != nil && *p.Year == year {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubBouwPlanRepo) Update(_ context.Context, p *model.BouwPlan) error {
	r.plans[p.ID] = p
	return nil
}

func (r *stubBouwPlanRepo) Delete(_ context.Context, p *model.BouwPlan) error {
	delete(r.plans, p.ID)
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
