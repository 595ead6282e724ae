// Package reminder holds the two scheduled mail jobs around the upload period.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainActivity "greentracker-backend/internal/domain/activity"
	"greentracker-backend/internal/domain/uow"
	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/infrastructure/mailer"
	"greentracker-backend/internal/usecase/uploadperiod"

	"github.com/sirupsen/logrus"
)

const (
	JobWeekly = "remind_units_without_activities"
	JobDaily  = "announce_upload_period_start"

	// reminders start this many days before the period closes
	finalDays = 31
)

type Recorder interface {
	RecordReminderEmail(job string, err error)
}

type Usecase struct {
	uow     uow.UnitOfWork
	periods *uploadperiod.Usecase
	mail    mailer.Mailer
	rec     Recorder
	log     logrus.FieldLogger
}

func NewUsecase(tx uow.UnitOfWork, periods *uploadperiod.Usecase, mail mailer.Mailer, rec Recorder, log logrus.FieldLogger) *Usecase {
	return &Usecase{uow: tx, periods: periods, mail: mail, rec: rec, log: log}
}

// RemindUnitsWithoutActivities mails every unit that filed nothing in the open period,
// but only during the period's final days.
func (u *Usecase) RemindUnitsWithoutActivities(ctx context.Context) error {
	now := u.periods.Now()
	var (
		recipients []domainUser.Unit
		end        time.Time
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := u.periods.FindWith(ctx, r)
		if errors.Is(err, uploadperiod.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if !p.Contains(now) || now.Before(p.EndTimestamp.AddDate(0, 0, -finalDays)) {
			return nil
		}
		end = p.EndTimestamp
		units, err := r.Units.FindAll(ctx)
		if err != nil {
			return err
		}
		for _, un := range units {
			n, err := r.Activities.Count(ctx, domainActivity.Filter{
				UnitID:       un.ID,
				UploadedFrom: &p.StartTimestamp,
				UploadedTo:   &p.EndTimestamp,
			})
			if err != nil {
				return err
			}
			if n == 0 {
				recipients = append(recipients, un)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("remind units: %w", err)
	}
	if len(recipients) == 0 {
		u.log.WithField("job", JobWeekly).Debug("no reminders due")
		return nil
	}

	subject := "GreenTracker: no activities submitted yet"
	return u.sendAll(ctx, JobWeekly, recipients, subject, func(un domainUser.Unit) string {
		return fmt.Sprintf("Hello %s,\n\nYour unit has not submitted any activity in the current upload period, "+
			"which closes on %s.\n\nPlease submit your activities before then.\n",
			un.Name, end.Format("2006-01-02"))
	})
}

// AnnounceUploadPeriodStart mails every unit on the calendar day the period starts.
func (u *Usecase) AnnounceUploadPeriodStart(ctx context.Context) error {
	now := u.periods.Now()
	var (
		recipients []domainUser.Unit
		start, end time.Time
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := u.periods.FindWith(ctx, r)
		if errors.Is(err, uploadperiod.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if !sameDay(now, p.StartTimestamp) {
			return nil
		}
		start, end = p.StartTimestamp, p.EndTimestamp
		recipients, err = r.Units.FindAll(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("announce upload period: %w", err)
	}
	if len(recipients) == 0 {
		return nil
	}

	subject := "GreenTracker: the upload period is open"
	return u.sendAll(ctx, JobDaily, recipients, subject, func(un domainUser.Unit) string {
		return fmt.Sprintf("Hello %s,\n\nThe upload period runs from %s to %s. "+
			"You can now submit your activities and evidence.\n",
			un.Name, start.Format("2006-01-02"), end.Format("2006-01-02"))
	})
}

// sendAll tries every recipient and joins the failures; units without an email are skipped.
func (u *Usecase) sendAll(ctx context.Context, job string, units []domainUser.Unit, subject string, body func(domainUser.Unit) string) error {
	var errs []error
	sent := 0
	for _, un := range units {
		if un.Email == "" {
			u.log.WithFields(logrus.Fields{"job": job, "unit_id": un.ID}).Warn("unit has no email")
			continue
		}
		err := u.mail.Send(ctx, mailer.Message{To: []string{un.Email}, Subject: subject, Body: body(un)})
		u.rec.RecordReminderEmail(job, err)
		if err != nil {
			errs = append(errs, fmt.Errorf("mail unit %s: %w", un.ID, err))
			continue
		}
		sent++
	}
	u.log.WithFields(logrus.Fields{"job": job, "sent": sent, "failed": len(errs)}).Info("reminders sent")
	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", job, errors.Join(errs...))
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
