package structs

import "go.mongodb.org/mongo-driver/bson/primitive"

type AssetStatus string

const (
	Enabled  AssetStatus = "ENABLED"
	Disabled AssetStatus = "DISABLED"
)

func (s AssetStatus) ToString() string {
	return string(s)
}

// Settings is the per-asset market configuration document.
type Settings struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Asset       string             `bson:"asset"`
	Status      string             `bson:"status"`
	MinQuantity float64            `bson:"min_quantity"`
	SweepSpec   string             `bson:"sweep_spec"`
	SpotURL     string             `bson:"spot_url"`
}
