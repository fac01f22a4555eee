package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/knowledgepipe/knowledgepipe/constants"
	knowledgev1 "github.com/knowledgepipe/knowledgepipe/gen/knowledge/v1"
	"github.com/knowledgepipe/knowledgepipe/internal/common"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
	"github.com/knowledgepipe/knowledgepipe/internal/export"
	"github.com/knowledgepipe/knowledgepipe/internal/llm"
	"github.com/knowledgepipe/knowledgepipe/internal/repository"
	"github.com/knowledgepipe/knowledgepipe/internal/search"
)

type KnowledgeService struct {
	knowledgev1.UnimplementedKnowledgeServiceServer

	jobs     repository.JobRepository
	chunks   repository.ChunkRepository
	search   *search.Service
	answerer llm.Answerer
	export   *export.Service
	counter  llm.TokenCounter

	contextBudget int
	logger        *slog.Logger
}

func NewKnowledgeService(
	jobs repository.JobRepository,
	chunks repository.ChunkRepository,
	searchSvc *search.Service,
	answerer llm.Answerer,
	exportSvc *export.Service,
	counter llm.TokenCounter,
	contextBudget int,
	logger *slog.Logger,
) *KnowledgeService {
	return &KnowledgeService{
		jobs:          jobs,
		chunks:        chunks,
		search:        searchSvc,
		answerer:      answerer,
		export:        exportSvc,
		counter:       counter,
		contextBudget: contextBudget,
		logger:        logger,
	}
}

func (s *KnowledgeService) GetPipelineStatus(ctx context.Context, _ *knowledgev1.GetPipelineStatusRequest) (*knowledgev1.GetPipelineStatusResponse, error) {
	counts, err := s.jobs.CountByStatus(ctx)
	if err != nil {
		s.logger.Warn("pipeline status failed", "error", err)
		return nil, status.Error(codes.Internal, "pipeline status failed")
	}

	out := make([]*knowledgev1.StatusCount, 0, len(counts))
	for _, st := range constants.JobStatuses() {
		out = append(out, &knowledgev1.StatusCount{
			Status: st,
			Count:  int64(counts[constants.JobStatus(st)]),
		})
	}
	return &knowledgev1.GetPipelineStatusResponse{Counts: out}, nil
}

func (s *KnowledgeService) ListJobs(ctx context.Context, req *knowledgev1.ListJobsRequest) (*knowledgev1.ListJobsResponse, error) {
	jobs, err := s.jobs.ListRecent(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Warn("list jobs failed", "error", err)
		return nil, status.Error(codes.Internal, "list jobs failed")
	}

	out := make([]*knowledgev1.Job, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, jobToProto(job))
	}
	return &knowledgev1.ListJobsResponse{Jobs: out}, nil
}

func (s *KnowledgeService) GetJob(ctx context.Context, req *knowledgev1.GetJobRequest) (*knowledgev1.GetJobResponse, error) {
	id, err := uuid.Parse(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid job_id")
	}

	job, err := s.jobs.GetByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "job not found")
	}
	if err != nil {
		s.logger.Warn("get job failed", "job_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get job failed")
	}

	chunks, err := s.chunks.ListByJob(ctx, id)
	if err != nil {
		s.logger.Warn("list job chunks failed", "job_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get job failed")
	}

	out := make([]*knowledgev1.JobChunk, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, &knowledgev1.JobChunk{
			ChunkId:    c.ID.String(),
			Ordinal:    int32(c.Ordinal),
			Text:       c.Text,
			TokenCount: int32(c.TokenCount),
		})
	}
	return &knowledgev1.GetJobResponse{Job: jobToProto(job), Chunks: out}, nil
}

func (s *KnowledgeService) SearchChunks(ctx context.Context, req *knowledgev1.SearchChunksRequest) (*knowledgev1.SearchChunksResponse, error) {
	jobID, err := parseOptionalJobID(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	matches, err := s.search.Search(ctx, req.GetQuery(), int(req.GetTopK()), jobID)
	if err != nil {
		if errorsIsInvalid(err) {
			return nil, status.Error(codes.InvalidArgument, "query is required")
		}
		s.logger.Warn("search failed", "error", err)
		return nil, status.Error(codes.Internal, "search failed")
	}

	return &knowledgev1.SearchChunksResponse{Matches: matchesToProto(matches)}, nil
}

func (s *KnowledgeService) Ask(ctx context.Context, req *knowledgev1.AskRequest) (*knowledgev1.AskResponse, error) {
	question := req.GetQuestion()
	if question == "" {
		return nil, status.Error(codes.InvalidArgument, "question is required")
	}
	jobID, err := parseOptionalJobID(req.GetJobId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	matches, err := s.search.Search(ctx, question, int(req.GetTopK()), jobID)
	if err != nil {
		s.logger.Warn("ask retrieval failed", "error", err)
		return nil, status.Error(codes.Internal, "retrieval failed")
	}
	if len(matches) == 0 {
		return &knowledgev1.AskResponse{
			Answer:     "No relevant content has been ingested for this question.",
			Confidence: 0,
		}, nil
	}

	contextText := llm.BuildContext(matches, s.contextBudget, s.counter)
	answer, err := s.answerer.Answer(ctx, question, contextText)
	if err != nil {
		s.logger.Warn("ask generation failed", "error", err)
		return nil, status.Error(codes.Internal, "answer generation failed")
	}

	return &knowledgev1.AskResponse{
		Answer:     answer.Answer,
		Confidence: answer.Confidence,
		Sources:    matchesToProto(matches),
	}, nil
}

func (s *KnowledgeService) ExportJobs(ctx context.Context, req *knowledgev1.ExportJobsRequest) (*knowledgev1.ExportJobsResponse, error) {
	data, err := s.export.ExportJobsXLSX(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Warn("export failed", "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &knowledgev1.ExportJobsResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("ingest-jobs-%s.xlsx", time.Now().UTC().Format("20060102-150405")),
	}, nil
}

func parseOptionalJobID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid job_id %q", raw)
	}
	return &id, nil
}

func errorsIsInvalid(err error) bool {
	return errors.Is(err, common.ErrInvalidInput)
}

func jobToProto(job *entity.IngestJob) *knowledgev1.Job {
	out := &knowledgev1.Job{
		Id:         job.ID.String(),
		Bucket:     job.Bucket,
		ObjectKey:  job.ObjectKey,
		Status:     string(job.Status),
		Attempts:   int32(job.Attempts),
		ChunkCount: int32(job.ChunkCount),
		CreatedAt:  job.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if job.FailureStage != nil {
		out.FailureStage = string(*job.FailureStage)
	}
	if job.ErrorMessage != nil {
		out.ErrorMessage = *job.ErrorMessage
	}
	if job.FinishedAt != nil {
		out.FinishedAt = job.FinishedAt.UTC().Format(time.RFC3339Nano)
	}
	return out
}

func matchesToProto(matches []search.Match) []*knowledgev1.ChunkMatch {
	out := make([]*knowledgev1.ChunkMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, &knowledgev1.ChunkMatch{
			ChunkId: m.Chunk.ID.String(),
			JobId:   m.Chunk.JobID.String(),
			Ordinal: int32(m.Chunk.Ordinal),
			Text:    m.Chunk.Text,
			Score:   m.Score,
		})
	}
	return out
}
