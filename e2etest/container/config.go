package container

// ImageConfig contains all images and their respective tags
// needed for running e2e tests.
type ImageConfig struct {
	MongoRepository string
	MongoVersion    string
}

const (
	dockerMongoRepository = "mongo"
	// should stay in sync with the mongo version used in production
	dockerMongoVersionTag = "7.0.5"
)

// NewImageConfig returns ImageConfig needed for running e2e tests.
func NewImageConfig() ImageConfig {
	return ImageConfig{
		MongoRepository: dockerMongoRepository,
		MongoVersion:    dockerMongoVersionTag,
	}
}
