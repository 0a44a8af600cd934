package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/sewmaster/internal/config"
)

type fakeReports struct {
	text string
	err  error
	at   []time.Time
}

func (f *fakeReports) GenerateWeeklyReport(_ context.Context, now time.Time) (string, error) {
	f.at = append(f.at, now)
	return f.text, f.err
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) NotifyManager(_ context.Context, text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

var weekly = config.ReportingConfig{CronSchedule: "0 20 * * 5", Timezone: "America/Sao_Paulo"}

func TestNewSchedulerRejectsBadSchedule(t *testing.T) {
	_, err := NewScheduler(config.ReportingConfig{CronSchedule: "every friday", Timezone: "UTC"}, &fakeReports{}, nil, nil)
	assert.ErrorContains(t, err, "REPORT_CRON_SCHEDULE")
}

func TestRunWeeklyReportNotifiesManager(t *testing.T) {
	reports := &fakeReports{text: "Resumo de pagamentos"}
	notifier := &fakeNotifier{}
	s, err := NewScheduler(weekly, reports, notifier, nil)
	require.NoError(t, err)

	require.NoError(t, s.RunWeeklyReport(context.Background()))
	assert.Equal(t, []string{"Resumo de pagamentos"}, notifier.sent)
	require.Len(t, reports.at, 1)
	assert.Equal(t, "America/Sao_Paulo", reports.at[0].Location().String())
}

func TestRunWeeklyReportWithoutNotifier(t *testing.T) {
	reports := &fakeReports{text: "ok"}
	s, err := NewScheduler(weekly, reports, nil, nil)
	require.NoError(t, err)

	require.NoError(t, s.RunWeeklyReport(context.Background()))
	assert.Len(t, reports.at, 1)
}

func TestRunWeeklyReportErrors(t *testing.T) {
	s, err := NewScheduler(weekly, &fakeReports{err: errors.New("ctx done")}, &fakeNotifier{}, nil)
	require.NoError(t, err)
	assert.ErrorContains(t, s.RunWeeklyReport(context.Background()), "generate weekly report")

	s, err = NewScheduler(weekly, &fakeReports{text: "x"}, &fakeNotifier{err: errors.New("403")}, nil)
	require.NoError(t, err)
	assert.ErrorContains(t, s.RunWeeklyReport(context.Background()), "send weekly report")
}

func TestStartRegistersJob(t *testing.T) {
	s, err := NewScheduler(weekly, &fakeReports{}, nil, nil)
	require.NoError(t, err)

	require.NoError(t, s.Start())
	defer s.Stop()

	entries := s.cron.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, time.Friday, entries[0].Next.Weekday())
	assert.Equal(t, 20, entries[0].Next.Hour())
}
