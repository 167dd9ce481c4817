package router

import (
	"net/http"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/workflow"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Submit(c *ginext.Context)
	ListAll(c *ginext.Context)
	ListByStatus(status domain.Status) ginext.HandlerFunc
	CashierList(view domain.CashierView) ginext.HandlerFunc
	GetReservation(c *ginext.Context)
	Review(kind workflow.ActionKind) ginext.HandlerFunc
	UpdateAdminAnnotation(c *ginext.Context)
	UpdateReceipt(c *ginext.Context)
	DeleteReservations(c *ginext.Context)
	SendReminder(c *ginext.Context)
	SendReminderAll(c *ginext.Context)
	DiningAmount(c *ginext.Context)

	AssignRooms(c *ginext.Context)
	UnassignRoom(c *ginext.Context)
	EditBooking(c *ginext.Context)
	ListRooms(c *ginext.Context)
	AddRoom(c *ginext.Context)
	DeleteRoom(c *ginext.Context)

	Withdraw(c *ginext.Context)
	CheckIn(c *ginext.Context)
	CheckOut(c *ginext.Context)
	Edit(c *ginext.Context)
	UpdatePayment(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	Me(c *ginext.Context)
	Notifications(c *ginext.Context)
	SendNotification(c *ginext.Context)
}

// InitRouter mounts the API behind auth. /health stays open.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", auth)
	{
		res := api.Group("/reservations")

		// Submission and listing
		res.POST("", h.Submit)
		res.GET("/all", h.ListAll)
		res.GET("/pending", h.ListByStatus(domain.StatusPending))
		res.GET("/approved", h.ListByStatus(domain.StatusApproved))
		res.GET("/rejected", h.ListByStatus(domain.StatusRejected))
		res.GET("/hold", h.ListByStatus(domain.StatusHold))
		res.GET("/details/:id", h.GetReservation)

		// Cashier views
		res.GET("/current", h.CashierList(domain.ViewCurrent))
		res.GET("/late", h.CashierList(domain.ViewLateCheckout))
		res.GET("/checkedout", h.CashierList(domain.ViewCheckedOut))
		res.GET("/payment/pending", h.CashierList(domain.ViewPaymentPending))
		res.GET("/checkout/today", h.CashierList(domain.ViewCheckoutToday))

		// Review chain
		res.PUT("/approve/:id", h.Review(workflow.ActionApprove))
		res.PUT("/reject/:id", h.Review(workflow.ActionReject))
		res.PUT("/hold/:id", h.Review(workflow.ActionHold))

		// Rooms
		res.GET("/rooms", h.ListRooms)
		res.POST("/rooms", h.AddRoom)
		res.DELETE("/rooms/:number", h.DeleteRoom)
		res.PUT("/rooms/:id", h.AssignRooms)
		res.PUT("/rooms/:id/remove", h.UnassignRoom)
		res.PUT("/rooms/:id/update", h.EditBooking)

		// Stay lifecycle
		res.PUT("/checkin/:id", h.CheckIn)
		res.PUT("/checkout/:id", h.CheckOut)
		res.PUT("/payment/:id", h.UpdatePayment)
		res.PUT("/edit/:id", h.Edit)
		res.DELETE("/withdraw/:id", h.Withdraw)

		// Admin bookkeeping
		res.PUT("/admin-annotations/:id", h.UpdateAdminAnnotation)
		res.PUT("/update-receipt/:id", h.UpdateReceipt)
		res.DELETE("", h.DeleteReservations)
		res.POST("/send-reminder", h.SendReminder)
		res.POST("/send-reminder-all", h.SendReminderAll)
		res.GET("/dining/:id", h.DiningAmount)
		res.POST("/notification/:email", h.SendNotification)

		users := api.Group("/users")
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/me", h.Me)
		users.GET("/me/notifications", h.Notifications)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
