package vectorstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/knowledgepipe/knowledgepipe/internal/common"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
)

const (
	payloadJobID   = "job_id"
	payloadOrdinal = "ordinal"
)

type qdrantIndex struct {
	conn       *grpc.ClientConn
	collection string
	logger     *slog.Logger
}

func NewQdrantIndex(cfg common.VectorStoreConfig, logger *slog.Logger) (Index, error) {
	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("qdrant connection: %w", err)
	}
	logger.Info("connected to vector store", "addr", cfg.Addr, "collection", cfg.Collection)
	return &qdrantIndex{conn: conn, collection: cfg.Collection, logger: logger}, nil
}

func (q *qdrantIndex) EnsureCollection(ctx context.Context, dim int) error {
	collections := qdrant.NewCollectionsClient(q.conn)
	_, err := collections.Get(ctx, &qdrant.GetCollectionInfoRequest{
		CollectionName: q.collection,
	})
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.NotFound {
		return fmt.Errorf("check collection: %w", err)
	}

	q.logger.Info("creating collection", "collection", q.collection, "dim", dim)
	_, err = collections.Create(ctx, &qdrant.CreateCollection{
		CollectionName: q.collection,
		VectorsConfig: &qdrant.VectorsConfig{
			Config: &qdrant.VectorsConfig_Params{
				Params: &qdrant.VectorParams{
					Size:     uint64(dim),
					Distance: qdrant.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

func (q *qdrantIndex) UpsertChunks(ctx context.Context, jobID uuid.UUID, chunks []entity.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	points := make([]*qdrant.PointStruct, 0, len(chunks))
	for _, c := range chunks {
		points = append(points, &qdrant.PointStruct{
			Id: &qdrant.PointId{PointIdOptions: &qdrant.PointId_Uuid{Uuid: c.ID.String()}},
			Payload: map[string]*qdrant.Value{
				payloadJobID:   {Kind: &qdrant.Value_StringValue{StringValue: jobID.String()}},
				payloadOrdinal: {Kind: &qdrant.Value_IntegerValue{IntegerValue: int64(c.Ordinal)}},
			},
			Vectors: &qdrant.Vectors{VectorsOptions: &qdrant.Vectors_Vector{Vector: &qdrant.Vector{Data: c.Embedding}}},
		})
	}

	wait := true
	_, err := qdrant.NewPointsClient(q.conn).Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collection,
		Points:         points,
		Wait:           &wait,
	})
	if err != nil {
		return fmt.Errorf("upsert points: %w", err)
	}
	q.logger.Debug("upserted points", "collection", q.collection, "job_id", jobID, "count", len(points))
	return nil
}

func (q *qdrantIndex) Search(ctx context.Context, vector []float32, topK int, jobID *uuid.UUID) ([]ScoredChunk, error) {
	req := &qdrant.SearchPoints{
		CollectionName: q.collection,
		Vector:         vector,
		Limit:          uint64(topK),
		WithPayload: &qdrant.WithPayloadSelector{
			SelectorOptions: &qdrant.WithPayloadSelector_Enable{Enable: true},
		},
	}
	if jobID != nil {
		req.Filter = jobFilter(*jobID)
	}

	resp, err := qdrant.NewPointsClient(q.conn).Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search points: %w", err)
	}

	out := make([]ScoredChunk, 0, len(resp.GetResult()))
	for _, point := range resp.GetResult() {
		chunkID, err := uuid.Parse(point.GetId().GetUuid())
		if err != nil {
			q.logger.Warn("skipping point with non-uuid id", "id", point.GetId().GetUuid())
			continue
		}
		hit := ScoredChunk{ChunkID: chunkID, Score: point.GetScore()}
		if v, ok := point.GetPayload()[payloadJobID]; ok {
			if id, err := uuid.Parse(v.GetStringValue()); err == nil {
				hit.JobID = id
			}
		}
		if v, ok := point.GetPayload()[payloadOrdinal]; ok {
			hit.Ordinal = int(v.GetIntegerValue())
		}
		out = append(out, hit)
	}
	return out, nil
}

func (q *qdrantIndex) DeleteChunks(ctx context.Context, chunkIDs []uuid.UUID) error {
	if len(chunkIDs) == 0 {
		return nil
	}
	ids := make([]*qdrant.PointId, len(chunkIDs))
	for i, id := range chunkIDs {
		ids[i] = &qdrant.PointId{PointIdOptions: &qdrant.PointId_Uuid{Uuid: id.String()}}
	}
	wait := true
	_, err := qdrant.NewPointsClient(q.conn).Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collection,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Points{
				Points: &qdrant.PointsIdsList{Ids: ids},
			},
		},
		Wait: &wait,
	})
	if err != nil {
		return fmt.Errorf("delete %d points: %w", len(chunkIDs), err)
	}
	q.logger.Debug("deleted points", "collection", q.collection, "count", len(chunkIDs))
	return nil
}

func (q *qdrantIndex) Close() error {
	return q.conn.Close()
}

func jobFilter(jobID uuid.UUID) *qdrant.Filter {
	return &qdrant.Filter{
		Must: []*qdrant.Condition{{
			ConditionOneOf: &qdrant.Condition_Field{
				Field: &qdrant.FieldCondition{
					Key: payloadJobID,
					Match: &qdrant.Match{
						MatchValue: &qdrant.Match_Keyword{Keyword: jobID.String()},
					},
				},
			},
		}},
	}
}
