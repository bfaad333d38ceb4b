package models

type Module struct {
	ID            int64  `bson:"_id" json:"id"`
	Title         string `bson:"title" json:"title"`
	Description   string `bson:"description" json:"description"`
	VideoURL      string `bson:"video_url" json:"videoUrl"`
	VideoDuration string `bson:"video_duration" json:"videoDuration"`
	OrderIndex    int    `bson:"order_index" json:"orderIndex"`
	IsLocked      bool   `bson:"is_locked" json:"isLocked"`
}
