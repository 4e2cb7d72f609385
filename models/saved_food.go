package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedFood is a reusable nutrition template for quick-adding meals. Logging a
// meal copies its values; deleting the template never touches past logs.
type SavedFood struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Calories    int                `bson:"calories" json:"calories" binding:"min=0"`
	Protein     float64            `bson:"protein" json:"protein" binding:"min=0"`
	Carbs       float64            `bson:"carbs" json:"carbs" binding:"min=0"`
	Fat         float64            `bson:"fat" json:"fat" binding:"min=0"`
	ServingSize float64            `bson:"serving_size" json:"servingSize" binding:"required,gt=0"`
	ServingUnit string             `bson:"serving_unit" json:"servingUnit" binding:"required,oneof=g ml piece portion"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
