package app

import (
	"fmt"
	"strings"

	"github.com/bubtcse/retakewizard/internal/store"
	"github.com/bubtcse/retakewizard/internal/store/memory"
	mongostore "github.com/bubtcse/retakewizard/internal/store/mongo"
)

func NewStore(dsn, dbName string) (store.StudentStore, error) {
	switch {
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return mongostore.NewMongoStore(dsn, dbName)
	case dsn == "" || dsn == "memory":
		return memory.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unable to determine store type from DSN: %s", dsn)
	}
}
