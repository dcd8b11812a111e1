package api

import (
	"time"

	"github.com/KyleKincer/tableyeah-foh/internal/model"
)

// Wire types. Geometry comes over flat with snake_case keys; the model keeps
// it nested, so tables and elements convert explicitly.

type floorPlanResponse struct {
	Tables   []tableDTO   `json:"tables"`
	Elements []elementDTO `json:"elements"`
}

type tableDTO struct {
	ID          string      `json:"id"`
	TableNumber string      `json:"table_number"`
	MinCovers   int         `json:"min_covers"`
	MaxCovers   int         `json:"max_covers"`
	Shape       string      `json:"shape"`
	PositionX   *float64    `json:"position_x"`
	PositionY   *float64    `json:"position_y"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Rotation    float64     `json:"rotation"`
	Status      string      `json:"status"`
	Current     *seatingDTO `json:"current_reservation"`
}

type seatingDTO struct {
	GuestName string    `json:"guest_name"`
	Covers    int       `json:"covers"`
	SeatedAt  time.Time `json:"seated_at"`
}

func (t tableDTO) toModel() model.Table {
	out := model.Table{
		ID:        t.ID,
		Number:    t.TableNumber,
		MinCovers: t.MinCovers,
		MaxCovers: t.MaxCovers,
		Shape:     model.TableShape(t.Shape),
		Geometry: model.Geometry{
			PosX:     t.PositionX,
			PosY:     t.PositionY,
			Width:    t.Width,
			Height:   t.Height,
			Rotation: t.Rotation,
		},
		Status: model.TableStatus(t.Status),
	}
	if t.Current != nil {
		out.Current = &model.Seating{
			GuestName: t.Current.GuestName,
			Covers:    t.Current.Covers,
			SeatedAt:  t.Current.SeatedAt,
		}
	}
	return out
}

type elementDTO struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	PositionX *float64 `json:"position_x"`
	PositionY *float64 `json:"position_y"`
	Width     float64  `json:"width"`
	Height    float64  `json:"height"`
	Rotation  float64  `json:"rotation"`
	ZIndex    int      `json:"z_index"`
	Label     string   `json:"label"`
	Color     string   `json:"color"`
	Active    bool     `json:"active"`
}

func (e elementDTO) toModel() model.Element {
	return model.Element{
		ID:   e.ID,
		Kind: model.ElementKind(e.Kind),
		Geometry: model.Geometry{
			PosX:     e.PositionX,
			PosY:     e.PositionY,
			Width:    e.Width,
			Height:   e.Height,
			Rotation: e.Rotation,
		},
		ZIndex: e.ZIndex,
		Label:  e.Label,
		Color:  e.Color,
		Active: e.Active,
	}
}

type serversResponse struct {
	Servers []serverDTO `json:"servers"`
}

type serverDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Active bool   `json:"active"`
}

type assignmentsResponse struct {
	Assignments map[string]assignmentDTO `json:"assignments"`
}

type assignmentDTO struct {
	ServerID    string `json:"server_id"`
	ServerName  string `json:"server_name"`
	ServerColor string `json:"server_color"`
}

type waitlistResponse struct {
	Entries []waitlistEntryDTO `json:"entries"`
}

type waitlistEntryDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Covers        int       `json:"covers"`
	QuotedMinutes int       `json:"quoted_minutes"`
	AddedAt       time.Time `json:"added_at"`
}

func (w waitlistEntryDTO) toModel() model.WaitlistEntry {
	return model.WaitlistEntry{
		ID:            w.ID,
		Name:          w.Name,
		Covers:        w.Covers,
		QuotedMinutes: w.QuotedMinutes,
		AddedAt:       w.AddedAt,
	}
}

type guestsResponse struct {
	Guests []guestDTO `json:"guests"`
}

type guestDTO struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Phone  string   `json:"phone"`
	Email  string   `json:"email"`
	Visits int      `json:"visit_count"`
	Notes  string   `json:"notes"`
	Tags   []string `json:"tags"`
}

type eventsResponse struct {
	Events []eventDTO `json:"events"`
}

type eventDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StartsAt   time.Time `json:"starts_at"`
	Capacity   int       `json:"capacity"`
	Sold       int       `json:"sold"`
	PriceCents int64     `json:"price_cents"`
}

func (e eventDTO) toModel() model.Event {
	return model.Event(e)
}

type giftCardsResponse struct {
	Cards []giftCardDTO `json:"gift_cards"`
}

type giftCardDTO struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	BalanceCents int64     `json:"balance_cents"`
	Purchaser    string    `json:"purchaser"`
	State        string    `json:"state"`
	IssuedAt     time.Time `json:"issued_at"`
}

func (g giftCardDTO) toModel() model.GiftCard {
	return model.GiftCard(g)
}
