// persistence/interface.go
package persistence

import (
	"fmt"

	"github.com/playgrid/arcade/models"
)

// Database 对局归档接口
// Live room state never goes through here; only finished matches do.
type Database interface {
	SaveMatchRecord(record *models.MatchRecord) error
	LoadMatchRecords(playerID string, limit int) ([]models.MatchRecord, error)
	Close() error
}

var (
	ErrRecordNotFound = fmt.Errorf("record not found")
)
