package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttritionPrediction 外部評分工作寫入的單一員工預測
type AttritionPrediction struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EmployeeNumber    int                `json:"employeeNumber" bson:"employeeNumber"`       // 對應資料集 EmployeeNumber
	RiskScore         *float64           `json:"riskScore,omitempty" bson:"riskScore"`       // 0..1，缺值時使用預設
	RetentionDecision string             `json:"retentionDecision" bson:"retentionDecision"` // "Keep" / "Let Go"
	ModelName         string             `json:"modelName,omitempty" bson:"modelName,omitempty"`
	ScoredAt          time.Time          `json:"scoredAt" bson:"scoredAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}
