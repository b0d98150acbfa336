package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"auxite/internal/repository/mongo/structs"
	"auxite/models"
)

type SettingsRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewSettingsRepository(conn *mongo.Client) SettingsRepo {
	collection := conn.Database("settings").Collection("assets")

	return &SettingsRepository{conn: conn, collection: collection}
}

func (r *SettingsRepository) SetDefault() error {
	assets := []structs.Settings{
		{
			Asset:       models.AUXG,
			Status:      structs.Enabled.ToString(),
			MinQuantity: 0.1,
			SweepSpec:   "* * * * *",
			SpotURL:     "https://app.auxite.io/trade/AUXG",
		},
		{
			Asset:       models.AUXS,
			Status:      structs.Enabled.ToString(),
			MinQuantity: 1,
			SweepSpec:   "* * * * *",
			SpotURL:     "https://app.auxite.io/trade/AUXS",
		},
		{
			Asset:       models.AUXPT,
			Status:      structs.Disabled.ToString(),
			MinQuantity: 0.1,
			SweepSpec:   "*/5 * * * *",
			SpotURL:     "https://app.auxite.io/trade/AUXPT",
		},
		{
			Asset:       models.AUXPD,
			Status:      structs.Disabled.ToString(),
			MinQuantity: 0.1,
			SweepSpec:   "*/5 * * * *",
			SpotURL:     "https://app.auxite.io/trade/AUXPD",
		},
	}

	for _, asset := range assets {
		check, err := r.Load(asset.Asset)
		if err != nil && err != mongo.ErrNoDocuments {
			return err
		}

		if primitive.ObjectID.IsZero(check.ID) {
			_, err := r.collection.InsertOne(context.TODO(), asset)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *SettingsRepository) Load(asset string) (*structs.Settings, error) {
	var result structs.Settings

	if err := r.collection.FindOne(context.TODO(), bson.D{{Key: "asset", Value: asset}}).Decode(&result); err != nil {
		return &result, err
	}

	return &result, nil
}

func (r *SettingsRepository) List() ([]structs.Settings, error) {
	cur, err := r.collection.Find(context.TODO(), bson.D{})
	if err != nil {
		return nil, err
	}

	var out []structs.Settings
	if err := cur.All(context.TODO(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *SettingsRepository) UpdateStatus(id primitive.ObjectID, status structs.AssetStatus) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}},
	)
	if err != nil {
		return err
	}

	return nil
}
