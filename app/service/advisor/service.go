package advisor

import (
	"context"
	"log/slog"
	"time"

	"mecabot/app/client/chatmodel"
	"mecabot/app/config"
	"mecabot/app/service/catalog"
	"mecabot/app/service/diag"
	"mecabot/app/service/intent"
	"mecabot/app/service/ranking"
	"mecabot/app/service/rewrite"
	"mecabot/app/service/session"

	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	cfg        *config.Config
	catalogSvc *catalog.Service
	rewriteSvc *rewrite.Service
	diagSvc    *diag.Service

	client *chatmodel.Client
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Service{
		cfg:        cfg,
		catalogSvc: do.MustInvoke[*catalog.Service](di),
		rewriteSvc: do.MustInvoke[*rewrite.Service](di),
		diagSvc:    do.MustInvoke[*diag.Service](di),
		client:     chatmodel.New(cfg.LLM.Reply),
	}, nil
}

// Chat runs one full turn: route social vs technical, resolve the search
// query and price intent, retrieve, rank and reply. It never returns an
// error; every upstream failure degrades to a usable reply and the session
// stays intact for the next turn. The returned record is non-nil only when
// diagnostics are enabled.
func (s *Service) Chat(ctx context.Context, sessionID string, sess *session.Session, text string) (string, *diag.Record) {
	start := time.Now()

	history := sess.Turns()
	recent := lastTurns(history, historyWindow)

	sess.Append(session.RoleUser, text)

	if intent.Social(text) {
		reply := s.socialReply(ctx, text, recent)
		sess.Append(session.RoleAssistant, reply)

		slog.Info("Processed social turn",
			"session", sessionID,
			"duration", time.Since(start))

		return reply, nil
	}

	// Price intent decides the retrieval budget and the rewrite decides
	// the retrieval query; the two are independent of each other.
	var (
		priceIntent intent.PriceIntent
		query       string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		priceIntent = intent.ParsePrice(text)
		return nil
	})
	g.Go(func() error {
		query = s.rewriteSvc.Rewrite(gctx, text, history)
		return nil
	})
	_ = g.Wait()

	budget := ranking.Budget(priceIntent)

	var (
		candidates []catalog.Product
		rawCount   int
		filterLog  string
	)

	if s.cfg.Catalog.Mode == "keyword" {
		candidates, rawCount, filterLog = s.catalogSvc.SearchKeyword(query, s.cfg.Catalog.KeywordLimit)
		if len(candidates) > budget {
			candidates = candidates[:budget]
		}
	} else {
		candidates = s.catalogSvc.SearchSimilar(ctx, query, budget)
		rawCount = len(candidates)
		filterLog = catalog.FilterNone
	}

	ranked := ranking.Rank(candidates, priceIntent)

	reply := s.composeReply(ctx, text, ranked, recent)
	sess.Append(session.RoleAssistant, reply)

	record := diag.Record{
		SessionID: sessionID,
		Query:     query,
		Intent:    priceIntent.String(),
		RawCount:  rawCount,
		FilterLog: filterLog,
		Results:   ranked,
	}
	s.diagSvc.Add(record)

	slog.Info("Processed technical turn",
		"session", sessionID,
		"query", query,
		"intent", priceIntent.String(),
		"raw_count", rawCount,
		"shown", len(ranked),
		"duration", time.Since(start))

	if !s.cfg.Debug.Enabled {
		return reply, nil
	}

	return reply, &record
}

func lastTurns(turns []session.Turn, n int) []session.Turn {
	if len(turns) <= n {
		return turns
	}

	return turns[len(turns)-n:]
}
