package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const ContextUserKey = "user"

const (
	RecentActivityLimit = 10
	RecommendationLimit = 3
)
