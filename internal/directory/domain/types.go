// Package domain holds the business entities of the directory: the single
// in-memory source of truth every other module reads through snapshot
// accessors. IDs are human-readable and unique within their collection.
package domain

import "time"

// Priority is the lead temperature used for filter presets.
type Priority string

const (
	PriorityHot  Priority = "hot"
	PriorityWarm Priority = "warm"
	PriorityCold Priority = "cold"
)

// Lead statuses
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQuoted    = "quoted"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

// Quote statuses
const (
	QuoteStatusPending  = "pending"
	QuoteStatusApproved = "approved"
	QuoteStatusRejected = "rejected"
	QuoteStatusExpired  = "expired"
)

// Order statuses
const (
	OrderStatusInProduction = "in_production"
	OrderStatusReady        = "ready"
	OrderStatusDispatched   = "dispatched"
	OrderStatusDelivered    = "delivered"
)

// Payment statuses
const (
	PaymentStatusReceived = "received"
	PaymentStatusPending  = "pending"
	PaymentStatusOverdue  = "overdue"
)

// Invoice statuses
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Lead is a sales prospect.
type Lead struct {
	ID           string    `yaml:"id" json:"id"`
	CustomerName string    `yaml:"customerName" json:"customerName"`
	Location     string    `yaml:"location" json:"location"`
	Material     string    `yaml:"material" json:"material"`
	QuantityM    int       `yaml:"quantityM" json:"quantityM"`
	Priority     Priority  `yaml:"priority" json:"priority"`
	Status       string    `yaml:"status" json:"status"`
	Phone        string    `yaml:"phone" json:"phone"`
	Notes        string    `yaml:"notes" json:"notes"`
	Tags         []string  `yaml:"tags" json:"tags"`
	CreatedAt    time.Time `yaml:"createdAt" json:"createdAt"`
}

// Quote is a quotation sent to a customer.
type Quote struct {
	ID           string    `yaml:"id" json:"id"`
	Number       string    `yaml:"number" json:"number"`
	CustomerName string    `yaml:"customerName" json:"customerName"`
	Location     string    `yaml:"location" json:"location"`
	Material     string    `yaml:"material" json:"material"`
	AmountPaise  int64     `yaml:"amountPaise" json:"amountPaise"`
	Status       string    `yaml:"status" json:"status"`
	ValidUntil   time.Time `yaml:"validUntil" json:"validUntil"`
	Tags         []string  `yaml:"tags" json:"tags"`
	CreatedAt    time.Time `yaml:"createdAt" json:"createdAt"`
}

// Order is a confirmed sales order.
type Order struct {
	ID           string    `yaml:"id" json:"id"`
	Number       string    `yaml:"number" json:"number"`
	CustomerName string    `yaml:"customerName" json:"customerName"`
	Material     string    `yaml:"material" json:"material"`
	QuantityM    int       `yaml:"quantityM" json:"quantityM"`
	AmountPaise  int64     `yaml:"amountPaise" json:"amountPaise"`
	Status       string    `yaml:"status" json:"status"`
	DueDate      time.Time `yaml:"dueDate" json:"dueDate"`
	Tags         []string  `yaml:"tags" json:"tags"`
	CreatedAt    time.Time `yaml:"createdAt" json:"createdAt"`
}

// Customer is an established buyer.
type Customer struct {
	ID               string    `yaml:"id" json:"id"`
	Name             string    `yaml:"name" json:"name"`
	Location         string    `yaml:"location" json:"location"`
	Phone            string    `yaml:"phone" json:"phone"`
	Email            string    `yaml:"email" json:"email"`
	TotalPaise       int64     `yaml:"totalPaise" json:"totalPaise"`
	OutstandingPaise int64     `yaml:"outstandingPaise" json:"outstandingPaise"`
	Since            time.Time `yaml:"since" json:"since"`
	Tags             []string  `yaml:"tags" json:"tags"`
}

// InventoryItem is a fabric stock line.
type InventoryItem struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name" json:"name"`
	Material      string   `yaml:"material" json:"material"`
	Quality       string   `yaml:"quality" json:"quality"`
	StockM        int      `yaml:"stockM" json:"stockM"`
	PricePaisePerM int64   `yaml:"pricePaisePerM" json:"pricePaisePerM"`
	Godown        string   `yaml:"godown" json:"godown"`
	Tags          []string `yaml:"tags" json:"tags"`
}

// AnalyticsFact is a precomputed business metric shown on the analytics screen.
type AnalyticsFact struct {
	ID     string   `yaml:"id" json:"id"`
	Metric string   `yaml:"metric" json:"metric"`
	Value  string   `yaml:"value" json:"value"`
	Period string   `yaml:"period" json:"period"`
	Tags   []string `yaml:"tags" json:"tags"`
}

// Payment is a received or expected customer payment.
type Payment struct {
	ID           string    `yaml:"id" json:"id"`
	CustomerName string    `yaml:"customerName" json:"customerName"`
	AmountPaise  int64     `yaml:"amountPaise" json:"amountPaise"`
	Mode         string    `yaml:"mode" json:"mode"` // upi, neft, cash, cheque
	Status       string    `yaml:"status" json:"status"`
	Reference    string    `yaml:"reference" json:"reference"`
	Date         time.Time `yaml:"date" json:"date"`
	Tags         []string  `yaml:"tags" json:"tags"`
}

// Invoice is a billing document.
type Invoice struct {
	ID           string    `yaml:"id" json:"id"`
	Number       string    `yaml:"number" json:"number"`
	CustomerName string    `yaml:"customerName" json:"customerName"`
	AmountPaise  int64     `yaml:"amountPaise" json:"amountPaise"`
	Status       string    `yaml:"status" json:"status"`
	DueDate      time.Time `yaml:"dueDate" json:"dueDate"`
	Tags         []string  `yaml:"tags" json:"tags"`
}

// Contact is a dialable person resolved from "call <name>" voice commands.
type Contact struct {
	Name  string
	Phone string
	Kind  string // "customer" or "lead"
}
