package trip

import (
	"context"
	"encoding/json"

	"github.com/dennisjyw/NotionJourney/internal/notion"
	"github.com/dennisjyw/NotionJourney/pkg/model"
	"go.uber.org/zap"
)

// Client is the slice of the Notion API the trip service depends on.
type Client interface {
	RetrieveDatabase(ctx context.Context, databaseID string) (*notion.Database, error)
	QueryDataSource(ctx context.Context, dataSourceID string) ([]notion.Page, error)
	ListBlockChildren(ctx context.Context, blockID string) ([]json.RawMessage, error)
}

// Memo keys. One resolution and one row query per request, shared by every
// operation that runs during it.
const (
	memoKeyDataSource = "trip:dataSource"
	memoKeyRows       = "trip:rows"
)

type Service struct {
	client     Client
	databaseID string
	logger     *zap.Logger
}

func NewService(client Client, databaseID string, logger *zap.Logger) *Service {
	return &Service{
		client:     client,
		databaseID: databaseID,
		logger:     logger,
	}
}

// resolved is the outcome of data-source resolution: the id queries must
// address, plus the database icon when the retrieve succeeded.
type resolved struct {
	id   string
	icon *notion.Icon
}

// resolveDataSource turns the configured database id into the data source
// id the query API requires. Resolution failure is soft: the configured id
// is used directly, on the chance it already is a data source id.
func (s *Service) resolveDataSource(ctx context.Context) resolved {
	v, _ := memoDo(ctx, memoKeyDataSource, func() (any, error) {
		db, err := s.client.RetrieveDatabase(ctx, s.databaseID)
		if err != nil {
			s.logger.Warn("resolve_data_source: retrieve failed, using configured id directly",
				zap.String("database_id", s.databaseID),
				zap.Error(err),
			)
			return resolved{id: s.databaseID}, nil
		}
		r := resolved{id: s.databaseID, icon: db.Icon}
		if len(db.DataSources) > 0 {
			r.id = db.DataSources[0].ID
		}
		return r, nil
	})
	return v.(resolved)
}

// queryRows fetches every row of the trip data source, at most once per
// request.
func (s *Service) queryRows(ctx context.Context) ([]notion.Page, *notion.Icon, error) {
	r := s.resolveDataSource(ctx)
	v, err := memoDo(ctx, memoKeyRows, func() (any, error) {
		pages, err := s.client.QueryDataSource(ctx, r.id)
		return pages, err
	})
	if err != nil {
		return nil, nil, err
	}
	return v.([]notion.Page), r.icon, nil
}

// TripData fetches and projects the trip metadata and the sorted itinerary.
// A failing info-page block fetch is logged and leaves the info page absent;
// it never fails the projection.
func (s *Service) TripData(ctx context.Context) (*model.TripData, error) {
	rows, icon, err := s.queryRows(ctx)
	if err != nil {
		return nil, err
	}

	meta, infoRef := ProjectMetadata(rows, icon)
	if infoRef != nil {
		blocks, err := s.client.ListBlockChildren(ctx, infoRef.ID)
		if err != nil {
			s.logger.Warn("trip_data: info page fetch failed",
				zap.String("page_id", infoRef.ID),
				zap.Error(err),
			)
		} else {
			meta.InfoPage = &model.InfoPage{ID: infoRef.ID, Title: infoRef.Title, Blocks: blocks}
		}
	}

	return &model.TripData{
		Metadata:  meta,
		Itinerary: ProjectItinerary(rows),
	}, nil
}

// Days groups the itinerary into 1-based day buckets relative to the trip
// start date.
func (s *Service) Days(ctx context.Context) ([]model.GroupedItinerary, error) {
	rows, icon, err := s.queryRows(ctx)
	if err != nil {
		return nil, err
	}
	meta, _ := ProjectMetadata(rows, icon)
	return GroupByDay(ProjectItinerary(rows), meta.StartDate), nil
}

// PasswordConfig returns the configured gate password, or nil when no
// password row exists. Fetch errors degrade to nil rather than propagating.
func (s *Service) PasswordConfig(ctx context.Context) *string {
	rows, _, err := s.queryRows(ctx)
	if err != nil {
		s.logger.Warn("password_config: lookup failed", zap.Error(err))
		return nil
	}
	return Password(rows)
}

// PageBlocks proxies the raw child blocks of an itinerary item.
func (s *Service) PageBlocks(ctx context.Context, pageID string) ([]json.RawMessage, error) {
	return s.client.ListBlockChildren(ctx, pageID)
}
