package tagrank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clipstack/tagrank/internal/db"
	dbRedis "github.com/clipstack/tagrank/internal/db/redis"
	affinityrepo "github.com/clipstack/tagrank/internal/repository/affinity"
	contentrepo "github.com/clipstack/tagrank/internal/repository/content"
	engagementrepo "github.com/clipstack/tagrank/internal/repository/engagement"
	contentuc "github.com/clipstack/tagrank/internal/usecase/content"
	engagementuc "github.com/clipstack/tagrank/internal/usecase/engagement"
	feeduc "github.com/clipstack/tagrank/internal/usecase/feed"
	searchuc "github.com/clipstack/tagrank/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the tagrank SDK entry point.
type Client struct {
	store      db.Store
	searchSvc  *searchuc.Service
	contentSvc *contentuc.Service
	feedSvc    *feeduc.Service
	engageSvc  *engagementuc.Service
	obs        *observer
}

// New creates a tagrank Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("tagrank: database address required (use WithValkey or WithRedis)")
	}

	// The rueidis store serves both drivers; the option only names the target.
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("tagrank: create %s store: %w", cfg.driver, err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("tagrank: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	return wireClient(store, cfg, obs), nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	contentRepo := contentrepo.New(store)
	engagementRepo := engagementrepo.New(store)
	affinityRepo := affinityrepo.New(store)

	searchSvc := searchuc.New(contentRepo, engagementRepo, affinityRepo)
	if cfg.dampingHours > 0 || cfg.followBoost > 0 {
		searchSvc = searchSvc.WithParams(searchuc.Params{
			DampingHours: cfg.dampingHours,
			FollowBoost:  cfg.followBoost,
		})
	}
	if cfg.maxCandidates > 0 {
		searchSvc = searchSvc.WithMaxCandidates(cfg.maxCandidates)
	}

	return &Client{
		store:      store,
		searchSvc:  searchSvc,
		contentSvc: contentuc.New(contentRepo, engagementRepo),
		feedSvc:    feeduc.New(contentRepo, affinityRepo),
		engageSvc:  engagementuc.New(engagementRepo),
		obs:        obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search returns the ranked search service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc, obs: c.obs}
}

// Items returns the content item service.
func (c *Client) Items() *ItemService {
	return &ItemService{svc: c.contentSvc, obs: c.obs}
}

// Feed returns the recency feed service.
func (c *Client) Feed() *FeedService {
	return &FeedService{svc: c.feedSvc, obs: c.obs}
}

// Engagement returns the engagement counter service.
func (c *Client) Engagement() *EngagementService {
	return &EngagementService{svc: c.engageSvc, obs: c.obs}
}
