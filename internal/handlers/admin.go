package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodorders/internal/database"
	"foodorders/internal/migration"
	"foodorders/internal/seed"
	"foodorders/internal/store/mongostore"
	"foodorders/internal/store/pgstore"
)

// AdminDeps carries the concrete engines the maintenance endpoints operate
// on. These endpoints are mode-less: reset always rebuilds the relational
// schema, migrate always copies sql into mongo.
type AdminDeps struct {
	Pool   *pgxpool.Pool
	Seeder *seed.Seeder
	Seed   int64
	SQL    *pgstore.Store
	Mongo  *mongostore.Store
	Runner *migration.Runner
}

// Reset truncates the relational schema, reseeds the demo dataset and clears
// the document collections, so neither store can serve pre-reset data.
func Reset(deps AdminDeps, debugResponses bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := database.ResetSchema(ctx, deps.Pool); err != nil {
			respondError(c, debugResponses, err)
			return
		}

		seedValue := deps.Seed
		if seedValue == 0 {
			seedValue = time.Now().UnixNano()
		}
		dataset := seed.BuildDataset(rand.New(rand.NewSource(seedValue)), time.Now().UTC())
		counts, err := deps.Seeder.Apply(ctx, dataset)
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}

		if err := deps.Mongo.ClearAll(ctx); err != nil {
			respondError(c, debugResponses, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "seed": seedValue, "seeded": counts})
	}
}

// Migrate runs the full sql-to-mongo copy and reports the marker it wrote.
func Migrate(deps AdminDeps, debugResponses bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		marker, err := deps.Runner.Run(c.Request.Context())
		if err != nil {
			respondError(c, debugResponses, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "migration": marker})
	}
}

// Health reports per-store connectivity and which mode currently holds the
// data: mongo once a migration marker exists and order documents are present,
// sql otherwise.
func Health(deps AdminDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sqlStatus := "up"
		if err := deps.SQL.Ping(ctx); err != nil {
			sqlStatus = "down"
		}
		mongoStatus := "up"
		if err := deps.Mongo.Ping(ctx); err != nil {
			mongoStatus = "down"
		}

		activeMode := "sql"
		if mongoStatus == "up" {
			marker, err := deps.Mongo.MigrationMarker(ctx)
			if err == nil && marker != nil {
				if n, err := deps.Mongo.OrderCount(ctx); err == nil && n > 0 {
					activeMode = "mongo"
				}
			}
		}

		ok := sqlStatus == "up" && mongoStatus == "up"
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"ok":         ok,
			"stores":     gin.H{"sql": sqlStatus, "mongo": mongoStatus},
			"activeMode": activeMode,
		})
	}
}
