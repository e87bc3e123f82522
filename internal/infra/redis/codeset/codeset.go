package infra_redis_codeset

import (
	"github.com/go-redis/redis"
)

// Driver keeps the set of codes currently in use. SADD answers the
// uniqueness check and the reservation in one round trip.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

// Reserve claims a code. Returns false when the code is already taken.
func (d *Driver) Reserve(code string) (bool, error) {
	added, err := d.client.SAdd(d.key, code).Result()
	if err != nil {
		return false, err
	}
	return added == 1, nil
}

// Release frees a code after its game is deleted. Releasing a code that
// was never reserved is a no-op.
func (d *Driver) Release(code string) error {
	if code == "" {
		return nil
	}

	if err := d.client.SRem(d.key, code).Err(); err != nil {
		return err
	}
	return nil
}
