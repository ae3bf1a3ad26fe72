package main

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App owns all shared state: the database handle, the optional Redis
// cache for the upcoming-events list, and the external registration
// collaborator. Handlers are methods on App so nothing lives in package
// globals.
type App struct {
	DB        *gorm.DB
	Cache     *redis.Client
	Registrar *Registrar
}
