package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
)

const orderCollection = "orders"

type MongoOrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{coll: db.Collection(orderCollection)}
}

type mongoOrderItem struct {
	Product  string  `bson:"product"`
	Quantity int     `bson:"quantity"`
	Price    float64 `bson:"price"`
}

type mongoOrder struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	User  primitive.ObjectID `bson:"user"`
	Items []mongoOrderItem   `bson:"items"`
	Total float64            `bson:"total"`
	Date  time.Time          `bson:"date"`
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	uid, err := primitive.ObjectIDFromHex(order.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", order.UserID, err)
	}

	items := make([]mongoOrderItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, mongoOrderItem{Product: it.Product, Quantity: it.Quantity, Price: it.Price})
	}

	res, err := r.coll.InsertOne(ctx, mongoOrder{
		User:  uid,
		Items: items,
		Total: order.Total,
		Date:  order.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *order
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoOrderRepository) FindByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}
	return r.find(ctx, bson.M{"user": uid})
}

func (r *MongoOrderRepository) find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cur.Close(ctx)

	orders := make([]domain.Order, 0)
	for cur.Next(ctx) {
		var mo mongoOrder
		if err := cur.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, *mo.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

func (mo *mongoOrder) toDomain() *domain.Order {
	items := make([]domain.OrderItem, 0, len(mo.Items))
	for _, it := range mo.Items {
		items = append(items, domain.OrderItem{Product: it.Product, Quantity: it.Quantity, Price: it.Price})
	}
	return &domain.Order{
		ID:     mo.ID.Hex(),
		UserID: mo.User.Hex(),
		Items:  items,
		Total:  mo.Total,
		Date:   mo.Date,
	}
}
