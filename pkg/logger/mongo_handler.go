package logger

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoHandler ships log records to a MongoDB collection without blocking
// the request path. Records are buffered and flushed by a background
// worker; the buffer drops on overflow rather than stalling callers.
type mongoHandler struct {
	inner slog.Handler
	level slog.Level
	queue chan mongoRecord
	coll  *mongo.Collection
	attrs []slog.Attr
	group string
}

type mongoRecord struct {
	Time    time.Time              `bson:"time"`
	Level   string                 `bson:"level"`
	Message string                 `bson:"message"`
	Attrs   map[string]interface{} `bson:"attrs,omitempty"`
}

// EnableMongoSink connects to MongoDB and tees future log records into
// the "logs" collection of the given database. Call after the base
// logger is set up; a connection failure leaves logging unchanged.
func EnableMongoSink(uri, database string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	h := &mongoHandler{
		inner: L.Handler(),
		level: slog.LevelInfo,
		queue: make(chan mongoRecord, 1024),
		coll:  client.Database(database).Collection("logs"),
	}
	go h.worker()

	L = slog.New(h)
	slog.SetDefault(L)
	return nil
}

func (h *mongoHandler) worker() {
	for rec := range h.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, _ = h.coll.InsertOne(ctx, rec)
		cancel()
	}
}

func (h *mongoHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *mongoHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level {
		attrs := make(map[string]interface{}, r.NumAttrs()+len(h.attrs))
		for _, a := range h.attrs {
			attrs[h.key(a.Key)] = a.Value.Any()
		}
		r.Attrs(func(a slog.Attr) bool {
			attrs[h.key(a.Key)] = a.Value.Any()
			return true
		})

		select {
		case h.queue <- mongoRecord{
			Time:    r.Time,
			Level:   r.Level.String(),
			Message: r.Message,
			Attrs:   attrs,
		}:
		default:
			// Buffer full. Drop the Mongo copy, stdout still has it.
		}
	}

	return h.inner.Handle(ctx, r)
}

func (h *mongoHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}

func (h *mongoHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.inner = h.inner.WithAttrs(attrs)
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *mongoHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.inner = h.inner.WithGroup(name)
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return &clone
}
