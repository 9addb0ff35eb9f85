package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pieclinic/clinic-api/internal/email"
	"github.com/pieclinic/clinic-api/internal/repository"
)

// ReminderWorker mails doctors about appointments that start soon.
// Each tick scans the window [now+lead, now+lead+interval) so an
// appointment is picked up by exactly one tick.
type ReminderWorker struct {
	appointments repository.AppointmentRepository
	doctors      repository.DoctorRepository
	sender       email.Sender
	lead         time.Duration
	interval     time.Duration
}

func NewReminderWorker(
	appointments repository.AppointmentRepository,
	doctors repository.DoctorRepository,
	sender email.Sender,
	lead, interval time.Duration,
) *ReminderWorker {
	return &ReminderWorker{
		appointments: appointments,
		doctors:      doctors,
		sender:       sender,
		lead:         lead,
		interval:     interval,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.remind(ctx); err != nil {
				log.Error().Err(err).Msg("appointment reminders failed")
			}
		}
	}
}

func (w *ReminderWorker) remind(ctx context.Context) error {
	from := time.Now().Add(w.lead)
	to := from.Add(w.interval)

	appointments, err := w.appointments.ListStartingBetween(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to list upcoming appointments: %w", err)
	}

	for _, apt := range appointments {
		doctor, err := w.doctors.Get(ctx, apt.DoctorID)
		if err != nil {
			log.Error().Err(err).Str("appointment_id", apt.ID.String()).Msg("failed to resolve doctor for reminder")
			continue
		}

		subject := fmt.Sprintf("Upcoming appointment at %s", apt.StartTime.Format("15:04"))
		body := fmt.Sprintf(
			"You have an appointment with patient %s starting at %s.\n\n%s\n",
			apt.PatientMRN, apt.StartTime.Format(time.RFC1123), apt.Detail,
		)

		if err := w.sender.Send(doctor.Email, subject, body); err != nil {
			log.Error().Err(err).Str("appointment_id", apt.ID.String()).Msg("failed to send reminder")
		}
	}

	return nil
}
