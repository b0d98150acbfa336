package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"auxite/internal/repository/mongo/structs"
)

//go:generate mockery --case=snake --name=SettingsRepo

type SettingsRepo interface {
	SetDefault() error
	Load(asset string) (*structs.Settings, error)
	List() ([]structs.Settings, error)
	UpdateStatus(id primitive.ObjectID, status structs.AssetStatus) error
}
