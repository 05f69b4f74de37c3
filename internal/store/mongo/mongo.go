// Package mongo implementa el Repository sobre MongoDB, el storage
// primario del servicio. Los listados salen ordenados por created_at
// descendente, apoyados en los índices que crea EnsureIndexes.
package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dropDatabas3/pf-zambom-back/internal/store/core"
)

type Store struct {
	client    *driver.Client
	investors *driver.Collection
	trips     *driver.Collection
}

// New conecta al cluster y valida la conexión con un ping.
func New(ctx context.Context, uri, database string) (*Store, error) {
	client, err := driver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	db := client.Database(database)
	return &Store{
		client:    client,
		investors: db.Collection("investors"),
		trips:     db.Collection("trips"),
	}, nil
}

// EnsureIndexes crea los índices created_at descendente que usan los
// listados. Idempotente: correr de nuevo sobre índices existentes no falla.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	idx := driver.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}}
	if _, err := s.investors.Indexes().CreateOne(ctx, idx); err != nil {
		return err
	}
	if _, err := s.trips.Indexes().CreateOne(ctx, idx); err != nil {
		return err
	}
	return nil
}

// Ping verifica la conexión; lo usa GET /ready.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close corta la conexión al cluster.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// =================================================================================
// INVESTORS
// =================================================================================

// investorDoc es la forma persistida; el _id vive como ObjectID y se
// convierte a hex recién al salir hacia la capa HTTP.
type investorDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Corretora      string             `bson:"corretora"`
	ValorInvestido float64            `bson:"valor_investido"`
	Perfil         string             `bson:"perfil"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (d investorDoc) toCore() core.Investor {
	return core.Investor{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Corretora:      d.Corretora,
		ValorInvestido: d.ValorInvestido,
		Perfil:         d.Perfil,
		CreatedAt:      d.CreatedAt,
	}
}

func (s *Store) ListInvestors(ctx context.Context) ([]core.Investor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.investors.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []core.Investor
	for cur.Next(ctx) {
		var d investorDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toCore())
	}
	return out, cur.Err()
}

func (s *Store) CreateInvestor(ctx context.Context, inv *core.Investor) error {
	doc := investorDoc{
		Name:           inv.Name,
		Corretora:      inv.Corretora,
		ValorInvestido: inv.ValorInvestido,
		Perfil:         inv.Perfil,
		CreatedAt:      inv.CreatedAt,
	}
	res, err := s.investors.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		inv.ID = oid.Hex()
	}
	return nil
}

func (s *Store) DeleteInvestor(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return core.ErrInvalidID
	}
	res, err := s.investors.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}

// =================================================================================
// TRIPS
// =================================================================================

type tripDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Titulo     string             `bson:"titulo"`
	Destino    string             `bson:"destino"`
	DataInicio time.Time          `bson:"data_inicio"`
	DataFim    time.Time          `bson:"data_fim"`
	Preco      float64            `bson:"preco"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (d tripDoc) toCore() core.Trip {
	return core.Trip{
		ID:         d.ID.Hex(),
		Titulo:     d.Titulo,
		Destino:    d.Destino,
		DataInicio: d.DataInicio,
		DataFim:    d.DataFim,
		Preco:      d.Preco,
		CreatedAt:  d.CreatedAt,
	}
}

func (s *Store) ListTrips(ctx context.Context) ([]core.Trip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.trips.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []core.Trip
	for cur.Next(ctx) {
		var d tripDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toCore())
	}
	return out, cur.Err()
}

func (s *Store) CreateTrip(ctx context.Context, t *core.Trip) error {
	doc := tripDoc{
		Titulo:     t.Titulo,
		Destino:    t.Destino,
		DataInicio: t.DataInicio,
		DataFim:    t.DataFim,
		Preco:      t.Preco,
		CreatedAt:  t.CreatedAt,
	}
	res, err := s.trips.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid.Hex()
	}
	return nil
}

func (s *Store) DeleteTrip(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return core.ErrInvalidID
	}
	res, err := s.trips.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return core.ErrNotFound
	}
	return nil
}
