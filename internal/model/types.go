package model

import "time"

// TableStatus is the service status of a table as reported by the API.
type TableStatus string

const (
	StatusAvailable TableStatus = "available"
	StatusSeated    TableStatus = "seated"
	StatusUpcoming  TableStatus = "upcoming"
	StatusOccupied  TableStatus = "occupied"
)

// TableShape describes how a table is drawn on the floor plan.
type TableShape string

const (
	ShapeRectangle TableShape = "rectangle"
	ShapeCircle    TableShape = "circle"
	ShapeOval      TableShape = "oval"
	ShapeSquare    TableShape = "square"
)

// ElementKind identifies a non-table floor-plan marker.
type ElementKind string

const (
	ElementWall       ElementKind = "wall"
	ElementDivider    ElementKind = "divider"
	ElementColumn     ElementKind = "column"
	ElementPlant      ElementKind = "plant"
	ElementEntrance   ElementKind = "entrance"
	ElementKitchen    ElementKind = "kitchen"
	ElementBar        ElementKind = "bar"
	ElementRestroom   ElementKind = "restroom"
	ElementHostess    ElementKind = "hostess"
	ElementLabel      ElementKind = "label"
	ElementDecoration ElementKind = "decoration"
)

// Geometry is the percentage-based placement authored in the venue editor.
// Positions are 0-100 percentages of the canvas; width/height are reference
// units on a nominal 800-unit-wide canvas. Positions are nil when the venue
// has never placed the item.
type Geometry struct {
	PosX     *float64
	PosY     *float64
	Width    float64
	Height   float64
	Rotation float64
}

// Positioned reports whether both position percentages are set.
func (g Geometry) Positioned() bool {
	return g.PosX != nil && g.PosY != nil
}

// Seating is the party currently at a table.
type Seating struct {
	GuestName string
	Covers    int
	SeatedAt  time.Time
}

// Table is a table-with-status snapshot from the API.
type Table struct {
	ID        string
	Number    string
	MinCovers int
	MaxCovers int
	Shape     TableShape
	Geometry  Geometry
	Status    TableStatus
	Current   *Seating
}

// Element is a non-table floor-plan decoration or structure.
type Element struct {
	ID       string
	Kind     ElementKind
	Geometry Geometry
	ZIndex   int
	Label    string
	Color    string
	Active   bool
}

// FloorPlan is the per-date floor snapshot: tables plus decorations.
type FloorPlan struct {
	Tables   []Table
	Elements []Element
}

// Server is a member of the service staff who can be assigned tables.
type Server struct {
	ID     string
	Name   string
	Color  string
	Active bool
}

// Assignment maps a table to the server working it.
type Assignment struct {
	ServerID    string
	ServerName  string
	ServerColor string
}

// WaitlistEntry is a waiting party.
type WaitlistEntry struct {
	ID            string
	Name          string
	Covers        int
	QuotedMinutes int
	AddedAt       time.Time
}

// Guest is a guest-book record.
type Guest struct {
	ID     string
	Name   string
	Phone  string
	Email  string
	Visits int
	Notes  string
	Tags   []string
}

// Event is a ticketed event hosted by the venue.
type Event struct {
	ID         string
	Name       string
	StartsAt   time.Time
	Capacity   int
	Sold       int
	PriceCents int64
}

// GiftCard is an issued gift card.
type GiftCard struct {
	ID           string
	Code         string
	BalanceCents int64
	Purchaser    string
	State        string // active, redeemed, void
	IssuedAt     time.Time
}
