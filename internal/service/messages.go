package service

import (
	"fmt"
	"html"
	"strings"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
)

const dateLayout = "2006-01-02"

func summaryHTML(res *domain.Reservation) string {
	rows := []struct{ k, v string }{
		{"Guest Name", res.GuestName},
		{"Guest Email", res.GuestEmail},
		{"Number of Guests", fmt.Sprint(res.NumberOfGuests)},
		{"Number of Rooms", fmt.Sprint(res.NumberOfRooms)},
		{"Room Type", string(res.RoomType)},
		{"Purpose", res.Purpose},
		{"Arrival Date", res.ArrivalDate.Format(dateLayout)},
		{"Departure Date", res.DepartureDate.Format(dateLayout)},
		{"Address", res.Address},
		{"Category", string(res.Category)},
	}

	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "<div>%s: %s</div>", r.k, html.EscapeString(r.v))
	}
	return b.String()
}

func paymentReminder(res *domain.Reservation) domain.Message {
	return domain.Message{
		To:      []string{res.GuestEmail},
		Subject: "Payment Reminder",
		HTML: "<div>This is a reminder for payment of your reservation.</div><br><br>" +
			summaryHTML(res) +
			fmt.Sprintf("<div>Payment Amount: %d</div>", res.Payment.Amount),
	}
}

func roomsAssigned(res *domain.Reservation) domain.Message {
	var rooms []string
	for _, b := range res.Bookings {
		rooms = append(rooms, fmt.Sprintf("%d (%s to %s)", b.RoomNumber,
			b.StartDate.Format(dateLayout), b.EndDate.Format(dateLayout)))
	}
	return domain.Message{
		To:      []string{res.GuestEmail},
		Subject: "Room Assignment Updated",
		HTML: "<div>Rooms have been assigned to your reservation.</div><br><br>" +
			summaryHTML(res) +
			fmt.Sprintf("<div>Rooms: %s</div>", html.EscapeString(strings.Join(rooms, ", "))),
	}
}
