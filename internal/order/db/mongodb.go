package db

import (
	"context"
	"errors"
	"time"

	"github.com/arminmzh/storeforge-backend/internal/order"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "orders"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidID     = errors.New("invalid order id")
)

type addressDocument struct {
	Street     string `bson:"street"`
	City       string `bson:"city"`
	State      string `bson:"state"`
	PostalCode string `bson:"postal_code"`
}

type lineItemDocument struct {
	ProductID string `bson:"product_id"`
	Quantity  int    `bson:"quantity"`
	UnitPrice string `bson:"unit_price"`
}

type orderDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	StoreID          string             `bson:"store_id"`
	BuyerID          string             `bson:"buyer_id"`
	ShippingAddress  addressDocument    `bson:"shipping_address"`
	PostTrackingCode string             `bson:"post_tracking_code,omitempty"`
	Items            []lineItemDocument `bson:"items"`
	Status           string             `bson:"status"`
	PaymentStatus    string             `bson:"payment_status"`
	Total            string             `bson:"total"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func toAddressDocument(a order.Address) addressDocument {
	return addressDocument{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
	}
}

func (d *orderDocument) toDomain() *order.Order {
	items := make([]order.LineItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, order.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &order.Order{
		ID:      d.ID.Hex(),
		StoreID: d.StoreID,
		BuyerID: d.BuyerID,
		ShippingAddress: order.Address{
			Street:     d.ShippingAddress.Street,
			City:       d.ShippingAddress.City,
			State:      d.ShippingAddress.State,
			PostalCode: d.ShippingAddress.PostalCode,
		},
		PostTrackingCode: d.PostTrackingCode,
		Items:            items,
		Status:           d.Status,
		PaymentStatus:    d.PaymentStatus,
		Total:            d.Total,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type repository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func New(database *mongo.Database, logger *zap.Logger) *repository {
	return &repository{
		collection: database.Collection(collectionName),
		logger:     logger,
	}
}

func (r *repository) Create(ctx context.Context, data order.Order) (*order.Order, error) {
	now := time.Now().UTC()

	items := make([]lineItemDocument, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, lineItemDocument{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	doc := orderDocument{
		ID:               primitive.NewObjectID(),
		StoreID:          data.StoreID,
		BuyerID:          data.BuyerID,
		ShippingAddress:  toAddressDocument(data.ShippingAddress),
		PostTrackingCode: data.PostTrackingCode,
		Items:            items,
		Status:           data.Status,
		PaymentStatus:    data.PaymentStatus,
		Total:            data.Total,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) List(ctx context.Context, storeID string) ([]order.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"store_id": storeID})
	if err != nil {
		return nil, err
	}

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	orders := make([]order.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, *doc.toDomain())
	}

	return orders, nil
}

func (r *repository) GetByID(ctx context.Context, storeID, id string) (*order.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc orderDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "store_id": storeID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) Update(ctx context.Context, storeID, id string, patch order.Patch) (*order.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.PaymentStatus != nil {
		set["payment_status"] = *patch.PaymentStatus
	}
	if patch.PostTrackingCode != nil {
		set["post_tracking_code"] = *patch.PostTrackingCode
	}
	if patch.ShippingAddress != nil {
		set["shipping_address"] = toAddressDocument(*patch.ShippingAddress)
	}

	var doc orderDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "store_id": storeID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}

		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *repository) Delete(ctx context.Context, storeID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "store_id": storeID})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return ErrOrderNotFound
	}

	return nil
}
