package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/RanieeelB/PulseFit/internal/telemetry/tracing"
	"github.com/RanieeelB/PulseFit/internal/training/workouts"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=stats_test

type logsRepo interface {
	ListSince(ctx context.Context, userID string, since time.Time) ([]workouts.LogEntry, error)
	ListAllSince(ctx context.Context, since time.Time) ([]workouts.LogEntry, error)
}

type profilesRepo interface {
	Get(ctx context.Context, userID string) (*workouts.Profile, error)
}

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Bucket is one frequency histogram bar.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// WeeklyStats are the totals since the start of the current week
// (Sunday), used for the cycle completion payload.
type WeeklyStats struct {
	Workouts      int            `json:"workouts"`
	Minutes       int            `json:"minutes"`
	TotalHours    string         `json:"totalHours"`
	Calories      int            `json:"calories"`
	CaloriesLabel string         `json:"caloriesLabel"`
	DaysCompleted []time.Weekday `json:"daysCompleted"`

	// Streak is filled in by the caller, not computed here.
	Streak int `json:"streak"`
}

type LeaderboardEntry struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Count  int    `json:"count"`
}

const (
	// FallbackUserName is used when no profile name is available.
	FallbackUserName = "PulseFit Athlete"

	fallbackAvatar  = "https://cdn-icons-png.flaticon.com/512/847/847969.png"
	leaderboardSize = 5
	dayKeyLayout    = "2006-01-02"
)

// Engine computes streaks, performance percentages and frequency
// histograms over the workout log.
type Engine struct {
	logs     logsRepo
	profiles profilesRepo

	// NowFunc can be injected for testing, defaults to time.Now
	NowFunc func() time.Time
}

func NewEngine(logs logsRepo, profiles profilesRepo) *Engine {
	return &Engine{
		logs:     logs,
		profiles: profiles,
		NowFunc:  time.Now,
	}
}

// Streak counts consecutive calendar days with at least one finished
// session. The streak is broken (zero) unless the most recent active
// day is today or yesterday.
func (e *Engine) Streak(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.engine.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := e.logs.ListSince(ctx, userID, time.Time{})
	if err != nil {
		return 0, fmt.Errorf("list logs: %w", err)
	}
	if len(logs) == 0 {
		return 0, nil
	}

	activeDays := make(map[string]struct{})
	var newestDay time.Time
	for _, entry := range logs {
		day := dayOf(entry.CompletedAt)
		activeDays[day.Format(dayKeyLayout)] = struct{}{}
		if day.After(newestDay) {
			newestDay = day
		}
	}

	now := e.NowFunc()
	today := dayOf(now)
	yesterday := today.AddDate(0, 0, -1)

	if !newestDay.Equal(today) && !newestDay.Equal(yesterday) {
		return 0, nil
	}

	// walk backward one calendar day at a time, starting from the most
	// recent active day, until the first gap
	current := today
	if !newestDay.Equal(today) {
		current = yesterday
	}

	streak := 0
	for {
		if _, ok := activeDays[current.Format(dayKeyLayout)]; !ok {
			break
		}
		streak++
		current = current.AddDate(0, 0, -1)
	}

	span.SetAttributes(attribute.Int("streak", streak))
	return streak, nil
}

// MonthlyPerformance returns the percentage of days of the current
// calendar month (so far) with at least one finished session, capped
// at 100 and rounded to the nearest integer.
func (e *Engine) MonthlyPerformance(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.engine.monthlyPerformance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := e.NowFunc()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()

	logs, err := e.logs.ListSince(ctx, userID, startOfMonth)
	if err != nil {
		return 0, fmt.Errorf("list logs: %w", err)
	}

	uniqueDays := make(map[int]struct{})
	for _, entry := range logs {
		uniqueDays[entry.CompletedAt.Day()] = struct{}{}
	}

	percentage := int(float64(len(uniqueDays))/float64(daysInMonth)*100 + 0.5)
	if percentage > 100 {
		percentage = 100
	}

	span.SetAttributes(attribute.Int("percentage", percentage))
	return percentage, nil
}

// Frequency returns a session count histogram for the requested period:
// week is a dense histogram of the trailing 7 days (today last), month
// is a sparse week-of-month histogram of the current month, and year is
// a dense 12 month histogram of the current year.
func (e *Engine) Frequency(ctx context.Context, userID string, period Period) (_ []Bucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.engine.frequency")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("period", string(period)))

	now := e.NowFunc()

	var startDate time.Time
	switch period {
	case PeriodWeek:
		startDate = dayOf(now).AddDate(0, 0, -6)
	case PeriodMonth:
		startDate = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		startDate = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return nil, fmt.Errorf("unknown frequency period: %s", period)
	}

	logs, err := e.logs.ListSince(ctx, userID, startDate)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	switch period {
	case PeriodWeek:
		return weekFrequency(now, logs), nil
	case PeriodMonth:
		return monthFrequency(logs), nil
	default:
		return yearFrequency(logs), nil
	}
}

// weekFrequency always produces exactly 7 buckets, oldest to newest
// with today last, regardless of log volume.
func weekFrequency(now time.Time, logs []workouts.LogEntry) []Bucket {
	countPerDay := make(map[string]int)
	for _, entry := range logs {
		countPerDay[dayOf(entry.CompletedAt).Format(dayKeyLayout)]++
	}

	buckets := make([]Bucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := dayOf(now).AddDate(0, 0, -i)
		buckets = append(buckets, Bucket{
			Label: strings.ToUpper(day.Format("Mon")),
			Count: countPerDay[day.Format(dayKeyLayout)],
		})
	}
	return buckets
}

// monthFrequency groups by week-of-month number; only weeks with at
// least one session appear.
func monthFrequency(logs []workouts.LogEntry) []Bucket {
	countPerWeek := make(map[int]int)
	for _, entry := range logs {
		d := entry.CompletedAt
		firstOfMonth := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
		weekNum := (d.Day() - 1 + int(firstOfMonth.Weekday()) + 6) / 7
		countPerWeek[weekNum]++
	}

	weekNums := make([]int, 0, len(countPerWeek))
	for weekNum := range countPerWeek {
		weekNums = append(weekNums, weekNum)
	}
	sort.Ints(weekNums)

	buckets := make([]Bucket, 0, len(weekNums))
	for _, weekNum := range weekNums {
		buckets = append(buckets, Bucket{
			Label: fmt.Sprintf("W%d", weekNum),
			Count: countPerWeek[weekNum],
		})
	}
	return buckets
}

// yearFrequency always produces 12 buckets, one per calendar month,
// zero-count months included.
func yearFrequency(logs []workouts.LogEntry) []Bucket {
	countPerMonth := make([]int, 12)
	for _, entry := range logs {
		countPerMonth[int(entry.CompletedAt.Month())-1]++
	}

	buckets := make([]Bucket, 0, 12)
	for i := 0; i < 12; i++ {
		buckets = append(buckets, Bucket{
			Label: strings.ToUpper(time.Month(i + 1).String()[:3]),
			Count: countPerMonth[i],
		})
	}
	return buckets
}

// WeeklyStats sums up the current week (starting Sunday).
func (e *Engine) WeeklyStats(ctx context.Context, userID string) (_ *WeeklyStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.engine.weeklyStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := e.NowFunc()
	startOfWeek := dayOf(now).AddDate(0, 0, -int(now.Weekday()))

	logs, err := e.logs.ListSince(ctx, userID, startOfWeek)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	stats := &WeeklyStats{
		Workouts:      len(logs),
		DaysCompleted: make([]time.Weekday, 0),
	}
	seenDays := make(map[time.Weekday]struct{})
	for _, entry := range logs {
		stats.Minutes += entry.DurationMinutes
		stats.Calories += entry.Calories
		weekday := entry.CompletedAt.Weekday()
		if _, ok := seenDays[weekday]; !ok {
			seenDays[weekday] = struct{}{}
			stats.DaysCompleted = append(stats.DaysCompleted, weekday)
		}
	}

	stats.TotalHours = fmt.Sprintf("%.1f", float64(stats.Minutes)/60)
	if stats.Calories > 1000 {
		stats.CaloriesLabel = fmt.Sprintf("%.1fk", float64(stats.Calories)/1000)
	} else {
		stats.CaloriesLabel = fmt.Sprintf("%d", stats.Calories)
	}

	return stats, nil
}

// Leaderboard ranks users by session count over the trailing 7 days,
// top 5. Names come from the denormalized log entries first, profile
// names fill the gaps.
func (e *Engine) Leaderboard(ctx context.Context) (_ []LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.engine.leaderboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	since := e.NowFunc().AddDate(0, 0, -7)
	logs, err := e.logs.ListAllSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	if len(logs) == 0 {
		return []LeaderboardEntry{}, nil
	}

	entriesByUser := make(map[string]*LeaderboardEntry)
	for _, logEntry := range logs {
		entry, ok := entriesByUser[logEntry.UserID]
		if !ok {
			name := logEntry.UserName
			if name == "" {
				name = FallbackUserName
			}
			entry = &LeaderboardEntry{
				UserID: logEntry.UserID,
				Name:   name,
				Avatar: fallbackAvatar,
			}
			entriesByUser[logEntry.UserID] = entry
		}
		entry.Count++
	}

	for userID, entry := range entriesByUser {
		profile, profileErr := e.profiles.Get(ctx, userID)
		if profileErr != nil {
			continue
		}
		if entry.Name == FallbackUserName && profile.Name != "" {
			entry.Name = profile.Name
		}
		if profile.Avatar != "" {
			entry.Avatar = profile.Avatar
		}
	}

	leaderboard := make([]LeaderboardEntry, 0, len(entriesByUser))
	for _, entry := range entriesByUser {
		leaderboard = append(leaderboard, *entry)
	}
	sort.Slice(leaderboard, func(i, j int) bool {
		return leaderboard[i].Count > leaderboard[j].Count
	})
	if len(leaderboard) > leaderboardSize {
		leaderboard = leaderboard[:leaderboardSize]
	}

	return leaderboard, nil
}

// dayOf truncates a timestamp to its calendar date.
func dayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
