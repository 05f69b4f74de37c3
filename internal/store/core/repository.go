package core

import "context"

// InvestorRepository son las operaciones sobre la colección investors.
// Create asigna el ID generado por el driver sobre el mismo struct.
type InvestorRepository interface {
	ListInvestors(ctx context.Context) ([]Investor, error)
	CreateInvestor(ctx context.Context, inv *Investor) error
	DeleteInvestor(ctx context.Context, id string) error
}

// TripRepository son las operaciones sobre la colección trips.
type TripRepository interface {
	ListTrips(ctx context.Context) ([]Trip, error)
	CreateTrip(ctx context.Context, t *Trip) error
	DeleteTrip(ctx context.Context, id string) error
}

// Repository agrupa ambos recursos más lo que necesita el readiness.
type Repository interface {
	InvestorRepository
	TripRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
