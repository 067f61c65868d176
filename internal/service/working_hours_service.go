package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/infra"
	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/repository"

	"gorm.io/gorm"
)

// dutchMonths maps month numbers to the Dutch names the frontends render.
var dutchMonths = [13]string{"", "januari", "februari", "maart", "april", "mei",
	"juni", "juli", "augustus", "september", "oktober", "november", "december"}

type WorkingHoursService interface {
	Upsert(ctx context.Context, user *model.User, req dto.UpsertWorkingHoursRequest) (*dto.WorkingHoursResponse, error)
	ListForUser(ctx context.Context, userID uint) ([]dto.WorkingHoursResponse, error)
	ListBetween(ctx context.Context, userID uint, from, to time.Time) ([]dto.WorkingHoursResponse, error)
	Get(ctx context.Context, id uint) (*dto.WorkingHoursResponse, error)
	Delete(ctx context.Context, id uint) error

	MyWeekOverview(ctx context.Context, user *model.User, from, to time.Time) ([]dto.WeekData, error)
	WeekOverviewForUser(ctx context.Context, userID uint, from, to time.Time) (*dto.WeekOverviewResponse, error)
	AdminWeekOverview(ctx context.Context, from, to time.Time) ([]dto.AdminWeekData, error)

	YearOverview(ctx context.Context, userID uint, year int) ([]dto.MonthData, error)
	MonthOverviewForYear(ctx context.Context, userID uint, year int) (*dto.MonthSumsResponse, error)
	YearOverviewPDF(ctx context.Context, userID uint, year int) ([]byte, error)

	Release(ctx context.Context, req dto.ReleaseRequest) error
}

type workingHoursService struct {
	hours repository.WorkingHoursRepository
	users repository.UserRepository
}

func NewWorkingHoursService(hours repository.WorkingHoursRepository, users repository.UserRepository) WorkingHoursService {
	return &workingHoursService{hours: hours, users: users}
}

// Upsert creates the entry for (user, date) when none exists, otherwise
// applies a partial update: only fields present in the request are written.
func (s *workingHoursService) Upsert(ctx context.Context, user *model.User, req dto.UpsertWorkingHoursRequest) (*dto.WorkingHoursResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apierror.BadRequest("Ongeldige datum")
	}

	entry, err := s.hours.FindByUserAndDate(ctx, user.ID, date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = &model.WorkingHours{
			Date:           date,
			CreatedBy:      user.Email,
			LastModifiedBy: &user.Email,
			UserID:         user.ID,
		}
		applyWorkingHoursUpdate(entry, req)
		if err := s.hours.Create(ctx, entry); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		applyWorkingHoursUpdate(entry, req)
		entry.LastModifiedBy = &user.Email
		if err := s.hours.Update(ctx, entry); err != nil {
			return nil, err
		}
	}

	resp := toWorkingHoursResponse(*entry)
	return &resp, nil
}

func applyWorkingHoursUpdate(entry *model.WorkingHours, req dto.UpsertWorkingHoursRequest) {
	if req.Hours != nil {
		entry.Hours = *req.Hours
	}
	if req.Milkings != nil {
		entry.Milkings = *req.Milkings
	}
	if req.Description != nil {
		entry.Description = req.Description
	}
	if req.Submitted != nil {
		entry.Submitted = *req.Submitted
	}
}

func (s *workingHoursService) ListForUser(ctx context.Context, userID uint) ([]dto.WorkingHoursResponse, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, apierror.BadRequest("De gebruiker waarvoor de uren zijn ingediend is niet bekend")
	}
	entries, err := s.hours.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toWorkingHoursResponses(entries), nil
}

func (s *workingHoursService) ListBetween(ctx context.Context, userID uint, from, to time.Time) ([]dto.WorkingHoursResponse, error) {
	entries, err := s.hours.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return toWorkingHoursResponses(entries), nil
}

func (s *workingHoursService) Get(ctx context.Context, id uint) (*dto.WorkingHoursResponse, error) {
	entry, err := s.hours.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.BadRequest("Dit object komt niet voor in de database")
	}
	resp := toWorkingHoursResponse(*entry)
	return &resp, nil
}

func (s *workingHoursService) Delete(ctx context.Context, id uint) error {
	entry, err := s.hours.FindByID(ctx, id)
	if err != nil {
		return apierror.BadRequest("Dit object komt niet voor in de database")
	}
	return s.hours.Delete(ctx, entry)
}

// MyWeekOverview buckets the logged-in user's entries per ISO week, newest
// week first.
func (s *workingHoursService) MyWeekOverview(ctx context.Context, user *model.User, from, to time.Time) ([]dto.WeekData, error) {
	if from.After(to) {
		return nil, apierror.BadRequest("Van datum moet voor tot datum zijn")
	}
	weeks := isoWeeksInRange(from, to)
	// newest first
	for i, j := 0, len(weeks)-1; i < j; i, j = i+1, j-1 {
		weeks[i], weeks[j] = weeks[j], weeks[i]
	}
	return s.weekBuckets(ctx, user, weeks)
}

// WeekOverviewForUser is the admin view on one employee: the same week
// buckets nested under the employee record, oldest week first.
func (s *workingHoursService) WeekOverviewForUser(ctx context.Context, userID uint, from, to time.Time) (*dto.WeekOverviewResponse, error) {
	if from.After(to) {
		return nil, apierror.BadRequest("Van datum moet voor tot datum zijn")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apierror.BadRequest("De gebruiker waarvoor de uren zijn ingediend is niet bekend")
	}

	weekData, err := s.weekBuckets(ctx, user, isoWeeksInRange(from, to))
	if err != nil {
		return nil, err
	}
	return &dto.WeekOverviewResponse{Werknemer: toUserResponse(user), WeekData: weekData}, nil
}

// AdminWeekOverview reports every active werknemer per ISO week.
func (s *workingHoursService) AdminWeekOverview(ctx context.Context, from, to time.Time) ([]dto.AdminWeekData, error) {
	if from.After(to) {
		return nil, apierror.BadRequest("Van datum moet voor tot datum zijn")
	}
	werknemers, err := s.users.ListActiveWithRole(ctx, "werknemer")
	if err != nil {
		return nil, err
	}

	result := []dto.AdminWeekData{}
	for _, wk := range isoWeeksInRange(from, to) {
		weekStart := isoWeekStart(wk.year, wk.week)
		weekEnd := weekStart.AddDate(0, 0, 6)

		info := []dto.EmployeeWeekInfo{}
		for i := range werknemers {
			werknemer := &werknemers[i]
			entries, err := s.hours.ListByUserBetween(ctx, werknemer.ID, weekStart, weekEnd)
			if err != nil {
				return nil, err
			}
			sumHours, sumMilkings := sumEntries(entries)
			info = append(info, dto.EmployeeWeekInfo{
				UserID:       werknemer.ID,
				Name:         werknemer.FullName(),
				SumHours:     sumHours,
				SumMilkings:  sumMilkings,
				Submitted:    weekSubmitted(werknemer, weekEnd, entries),
				WorkingHours: toWorkingHoursResponses(entries),
			})
		}

		result = append(result, dto.AdminWeekData{
			Year:         wk.year,
			Week:         wk.week,
			WeekStart:    fmtDate(weekStart),
			WeekEnd:      fmtDate(weekEnd),
			EmployeeInfo: info,
		})
	}
	return result, nil
}

func (s *workingHoursService) weekBuckets(ctx context.Context, user *model.User, weeks []isoWeek) ([]dto.WeekData, error) {
	result := []dto.WeekData{}
	for _, wk := range weeks {
		weekStart := isoWeekStart(wk.year, wk.week)
		weekEnd := weekStart.AddDate(0, 0, 6)

		entries, err := s.hours.ListByUserBetween(ctx, user.ID, weekStart, weekEnd)
		if err != nil {
			return nil, err
		}
		sumHours, sumMilkings := sumEntries(entries)
		result = append(result, dto.WeekData{
			Year:         wk.year,
			Week:         wk.week,
			WeekStart:    fmtDate(weekStart),
			WeekEnd:      fmtDate(weekEnd),
			SumHours:     sumHours,
			SumMilkings:  sumMilkings,
			Submitted:    weekSubmitted(user, weekEnd, entries),
			WorkingHours: toWorkingHoursResponses(entries),
		})
	}
	return result, nil
}

// weekSubmitted computes the ternary week status: nil when the account did
// not yet exist during that week, false for an empty or partially submitted
// week, true when every entry is submitted.
func weekSubmitted(user *model.User, weekEnd time.Time, entries []model.WorkingHours) *bool {
	created := user.CreatedAt.Truncate(24 * time.Hour)
	if created.After(weekEnd) {
		return nil
	}
	submitted := len(entries) > 0
	for _, e := range entries {
		if !e.Submitted {
			submitted = false
			break
		}
	}
	return &submitted
}

func sumEntries(entries []model.WorkingHours) (float64, int) {
	var hours float64
	var milkings int
	for _, e := range entries {
		hours += e.Hours
		milkings += e.Milkings
	}
	return hours, milkings
}

// YearOverview buckets all entries of the target year per calendar month.
// Every month is present, zero-filled when nothing was registered.
func (s *workingHoursService) YearOverview(ctx context.Context, userID uint, year int) ([]dto.MonthData, error) {
	entries, err := s.hours.ListByUserForYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	result := make([]dto.MonthData, 12)
	for m := 1; m <= 12; m++ {
		result[m-1] = dto.MonthData{Month: dutchMonths[m]}
	}
	for _, e := range entries {
		m := int(e.Date.Month())
		result[m-1].Hours += e.Hours
		result[m-1].Milkings += e.Milkings
	}
	return result, nil
}

// MonthOverviewForYear sums submitted entries only, keyed by month number.
func (s *workingHoursService) MonthOverviewForYear(ctx context.Context, userID uint, year int) (*dto.MonthSumsResponse, error) {
	entries, err := s.hours.ListByUserForYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	resp := &dto.MonthSumsResponse{
		Hours:    map[int]float64{},
		Milkings: map[int]int{},
	}
	for _, e := range entries {
		if !e.Submitted {
			continue
		}
		m := int(e.Date.Month())
		resp.Hours[m] += e.Hours
		resp.Milkings[m] += e.Milkings
	}
	return resp, nil
}

// YearOverviewPDF renders the year overview as a PDF document.
func (s *workingHoursService) YearOverviewPDF(ctx context.Context, userID uint, year int) ([]byte, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apierror.NotFound("Gebruiker niet gevonden")
	}
	months, err := s.YearOverview(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	return infra.GenerateYearOverviewPDF(user.FullName(), year, months)
}

// Release sets submitted=false for every date in [from,to] so the employee
// can edit the entries again. A date without an entry aborts with a 404
// naming the date.
func (s *workingHoursService) Release(ctx context.Context, req dto.ReleaseRequest) error {
	from, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return apierror.BadRequest("Ongeldige datum")
	}
	to, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return apierror.BadRequest("Ongeldige datum")
	}
	if from.After(to) {
		return apierror.BadRequest("Van datum moet voor tot datum zijn")
	}

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		entry, err := s.hours.FindByUserAndDate(ctx, req.UserID, date)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound(fmt.Sprintf("Werkuren voor %s zijn niet gevonden", date.Format("02-01-2006")))
		} else if err != nil {
			return err
		}
		entry.Submitted = false
		if err := s.hours.Update(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func toWorkingHoursResponses(entries []model.WorkingHours) []dto.WorkingHoursResponse {
	resp := make([]dto.WorkingHoursResponse, len(entries))
	for i, e := range entries {
		resp[i] = toWorkingHoursResponse(e)
	}
	return resp
}

// ── ISO week helpers ──────────────────────────────────────────────────────────

type isoWeek struct {
	year int
	week int
}

// isoWeeksInRange lists the distinct ISO weeks touched by [from,to], in
// calendar order.
func isoWeeksInRange(from, to time.Time) []isoWeek {
	seen := map[isoWeek]bool{}
	weeks := []isoWeek{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		y, w := d.ISOWeek()
		wk := isoWeek{year: y, week: w}
		if !seen[wk] {
			seen[wk] = true
			weeks = append(weeks, wk)
		}
	}
	return weeks
}

// isoWeekStart returns the Monday of the given ISO week. January 4th always
// falls in week 1, which anchors the calculation.
func isoWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := jan4.AddDate(0, 0, -(wd - 1))
	return monday.AddDate(0, 0, (week-1)*7)
}
