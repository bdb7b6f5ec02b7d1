package service

import (
	"context"
	"fmt"
	"strings"

	"carrental-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, b *domain.Booking) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", b.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Booking request received - %s", b.Reference))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello %s,\n\nWe received your booking request.\n\n", b.CustomerName)
	fmt.Fprintf(&sb, "Reference: %s\nVehicle: %s\nDates: %s to %s (%d days)\n", b.Reference, b.VehicleName, b.StartDate, b.EndDate, b.TotalDays)
	fmt.Fprintf(&sb, "Pickup: %s\nDropoff: %s\n\n", b.PickupLocation, b.DropoffLocation)
	for _, svc := range b.Services {
		if svc.IsIncluded {
			fmt.Fprintf(&sb, "- %s (included)\n", svc.Name)
			continue
		}
		fmt.Fprintf(&sb, "- %s x%d\n", svc.Name, svc.Quantity)
	}
	fmt.Fprintf(&sb, "\nTotal: %d\n\nWe will contact you shortly to confirm.\n", b.TotalPrice)
	m.SetBody("text/plain", sb.String())

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}
	return nil
}
