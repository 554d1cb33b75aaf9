package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"

	"eldercare/config"
	"eldercare/models"
	"eldercare/services/logger"
)

const roomIndex = "rooms"

var es *elasticsearch.Client

var searchLog logger.Logger = logger.NewDefaultLogger(logger.InfoLevel)

// ConnectElastic initializes the optional search mirror. When
// ELASTICSEARCH_URL is unset the /search endpoint degrades to the
// database LIKE search.
func ConnectElastic() {
	url := config.GetEnv("ELASTICSEARCH_URL")
	if url == "" {
		searchLog.Info("ELASTICSEARCH_URL not set, full-text search mirror disabled")
		return
	}

	cfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  config.GetEnv("ELASTICSEARCH_USER"),
		Password:  config.GetEnv("ELASTICSEARCH_PASSWORD"),
	}

	var err error
	es, err = elasticsearch.NewClient(cfg)
	if err != nil {
		searchLog.Error("Failed to connect to Elasticsearch: %v", err)
		es = nil
	}
}

// SearchEnabled reports whether the search mirror is usable
func SearchEnabled() bool {
	return es != nil
}

func roomDocument(room *models.Room) map[string]interface{} {
	return map[string]interface{}{
		"id":            room.ID,
		"name":          room.Name,
		"facilityName":  room.FacilityName,
		"city":          room.Location.City,
		"area":          room.Location.Area,
		"address":       room.Location.Address,
		"description":   room.Description,
		"roomType":      room.RoomType,
		"careLevel":     room.CareLevel,
		"rent":          room.Pricing.Rent,
		"overallRating": OverallRating(room),
		"isActive":      room.IsActive,
	}
}

// IndexRoom mirrors a single room into the search index. Failures only
// log: the database remains the source of truth.
func IndexRoom(room *models.Room) {
	if es == nil || room == nil {
		return
	}

	doc, err := json.Marshal(roomDocument(room))
	if err != nil {
		searchLog.Error("Failed to marshal room %d for indexing: %v", room.ID, err)
		return
	}

	res, err := es.Index(roomIndex, bytes.NewReader(doc),
		es.Index.WithDocumentID(fmt.Sprintf("%d", room.ID)),
		es.Index.WithContext(context.Background()),
	)
	if err != nil {
		searchLog.Error("Failed to index room %d: %v", room.ID, err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		searchLog.Error("Elasticsearch rejected room %d: %s", room.ID, res.Status())
	}
}

// IndexAllRooms bulk-reindexes every room, active or not
func IndexAllRooms() error {
	if es == nil {
		return nil
	}

	var rooms []models.Room
	if err := config.DB.Find(&rooms).Error; err != nil {
		return err
	}

	var buf strings.Builder
	for i := range rooms {
		meta := fmt.Sprintf(`{ "index" : { "_index" : "%s", "_id" : "%d" } }`, roomIndex, rooms[i].ID)
		buf.WriteString(meta + "\n")

		doc, err := json.Marshal(roomDocument(&rooms[i]))
		if err != nil {
			searchLog.Error("Failed to marshal room %d for bulk indexing: %v", rooms[i].ID, err)
			continue
		}
		buf.Write(doc)
		buf.WriteString("\n")
	}

	if buf.Len() == 0 {
		return nil
	}

	res, err := es.Bulk(bytes.NewReader([]byte(buf.String())), es.Bulk.WithContext(context.Background()))
	if err != nil {
		return fmt.Errorf("bulk index request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("bulk index rejected: %s", string(body))
	}

	searchLog.Info("Reindexed %d rooms", len(rooms))
	return nil
}

// SearchRoomIDs runs a fuzzy multi-field query against the mirror and
// returns matching room ids in relevance order.
func SearchRoomIDs(query string, limit int) ([]uint, error) {
	if es == nil {
		return nil, nil
	}
	if limit < 1 {
		limit = 10
	}

	searchQuery := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"should": []map[string]interface{}{
					{"multi_match": map[string]interface{}{
						"query":     query,
						"fields":    []string{"name^3", "facilityName^2", "city", "area", "description"},
						"fuzziness": "AUTO",
					}},
					{"match_phrase_prefix": map[string]interface{}{
						"name": query,
					}},
				},
				"filter": []map[string]interface{}{
					{"term": map[string]interface{}{"isActive": true}},
				},
				"minimum_should_match": 1,
			},
		},
	}

	body, err := json.Marshal(searchQuery)
	if err != nil {
		return nil, err
	}

	res, err := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(roomIndex),
		es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search failed: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID uint `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}
	return ids, nil
}
