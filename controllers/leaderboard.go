package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"fitstride/db"
	"fitstride/models"
	"fitstride/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const leaderboardCacheKey = "leaderboard:workouts"
const leaderboardCacheTTL = 60 * time.Second

// LeaderboardEntry represents a leaderboard row
type LeaderboardEntry struct {
	ID           string  `json:"id"`
	Rank         int     `json:"rank"`
	Name         string  `json:"name"`
	Workouts     int     `json:"workouts"`
	DistanceKm   float64 `json:"distanceKm"`
	EarnedBadges int     `json:"earnedBadges"`
	AvatarURL    string  `json:"avatarUrl"`
	CurrentUser  bool    `json:"currentUser"`
}

// GetLeaderboard ranks public-profile users by total completed workouts.
// The ranked list is cached in Redis for a minute; the currentUser flag is
// applied per request after the cache read.
func GetLeaderboard(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	currentID, _ := utils.GetUserIDFromEmail(email)

	var entries []LeaderboardEntry
	if cached := readLeaderboardCache(c); cached != nil {
		entries = cached
	} else {
		var err error
		entries, err = buildLeaderboard(c)
		if err != nil {
			log.Printf("Failed to build leaderboard: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
			return
		}
		writeLeaderboardCache(c, entries)
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].CurrentUser = entries[i].ID == currentID.Hex()
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"total":   len(entries),
	})
}

func readLeaderboardCache(ctx context.Context) []LeaderboardEntry {
	if db.RedisClient == nil {
		return nil
	}
	data, err := db.RedisClient.Get(ctx, leaderboardCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var entries []LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

func writeLeaderboardCache(ctx context.Context, entries []LeaderboardEntry) {
	if db.RedisClient == nil {
		return
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	db.RedisClient.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL)
}

func buildLeaderboard(c context.Context) ([]LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	// Per-user workout totals, ranked by count
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           "$userId",
			"totalWorkouts": bson.M{"$sum": 1},
			"totalDistance": bson.M{"$sum": "$distanceKm"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"totalWorkouts": -1}}},
		bson.D{{Key: "$limit", Value: 100}},
	}
	cursor, err := db.MongoDatabase.Collection("workouts").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var totals []struct {
		UserID        interface{} `bson:"_id"`
		TotalWorkouts int         `bson:"totalWorkouts"`
		TotalDistance float64     `bson:"totalDistance"`
	}
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, err
	}

	var entries []LeaderboardEntry
	rank := 1
	for _, t := range totals {
		var user models.User
		err := db.MongoDatabase.Collection("users").FindOne(ctx, bson.M{"_id": t.UserID}).Decode(&user)
		if err != nil {
			continue
		}
		if !user.ProfilePublic {
			continue
		}

		name := user.DisplayName
		if name == "" {
			name = utils.ExtractNameFromEmail(user.Email)
		}
		avatarURL := user.AvatarURL
		if avatarURL == "" {
			avatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + name
		}

		earnedCount, _ := db.MongoDatabase.Collection("user_achievements").CountDocuments(ctx, bson.M{
			"userId": user.ID,
			"earned": true,
		})

		entries = append(entries, LeaderboardEntry{
			ID:           user.ID.Hex(),
			Rank:         rank,
			Name:         name,
			Workouts:     t.TotalWorkouts,
			DistanceKm:   t.TotalDistance,
			EarnedBadges: int(earnedCount),
			AvatarURL:    avatarURL,
		})
		rank++
	}

	return entries, nil
}
