// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: knowledge/v1/knowledge.proto

package knowledgev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GetPipelineStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPipelineStatusRequest) Reset() {
	*x = GetPipelineStatusRequest{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPipelineStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPipelineStatusRequest) ProtoMessage() {}

func (x *GetPipelineStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPipelineStatusRequest.ProtoReflect.Descriptor instead.
func (*GetPipelineStatusRequest) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{0}
}

type StatusCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Count         int64                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusCount) Reset() {
	*x = StatusCount{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusCount) ProtoMessage() {}

func (x *StatusCount) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusCount.ProtoReflect.Descriptor instead.
func (*StatusCount) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{1}
}

func (x *StatusCount) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *StatusCount) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

type GetPipelineStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Counts        []*StatusCount         `protobuf:"bytes,1,rep,name=counts,proto3" json:"counts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPipelineStatusResponse) Reset() {
	*x = GetPipelineStatusResponse{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPipelineStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPipelineStatusResponse) ProtoMessage() {}

func (x *GetPipelineStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPipelineStatusResponse.ProtoReflect.Descriptor instead.
func (*GetPipelineStatusResponse) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{2}
}

func (x *GetPipelineStatusResponse) GetCounts() []*StatusCount {
	if x != nil {
		return x.Counts
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"` // defaults to 20
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{3}
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Bucket        string                 `protobuf:"bytes,2,opt,name=bucket,proto3" json:"bucket,omitempty"`
	ObjectKey     string                 `protobuf:"bytes,3,opt,name=object_key,json=objectKey,proto3" json:"object_key,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Attempts      int32                  `protobuf:"varint,5,opt,name=attempts,proto3" json:"attempts,omitempty"`
	ChunkCount    int32                  `protobuf:"varint,6,opt,name=chunk_count,json=chunkCount,proto3" json:"chunk_count,omitempty"`
	FailureStage  string                 `protobuf:"bytes,7,opt,name=failure_stage,json=failureStage,proto3" json:"failure_stage,omitempty"` // empty unless status is ERROR
	ErrorMessage  string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`     // RFC 3339
	FinishedAt    string                 `protobuf:"bytes,10,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC 3339, empty if not terminal
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{4}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetBucket() string {
	if x != nil {
		return x.Bucket
	}
	return ""
}

func (x *Job) GetObjectKey() string {
	if x != nil {
		return x.ObjectKey
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetAttempts() int32 {
	if x != nil {
		return x.Attempts
	}
	return 0
}

func (x *Job) GetChunkCount() int32 {
	if x != nil {
		return x.ChunkCount
	}
	return 0
}

func (x *Job) GetFailureStage() string {
	if x != nil {
		return x.FailureStage
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{5}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{6}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type JobChunk struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChunkId       string                 `protobuf:"bytes,1,opt,name=chunk_id,json=chunkId,proto3" json:"chunk_id,omitempty"`
	Ordinal       int32                  `protobuf:"varint,2,opt,name=ordinal,proto3" json:"ordinal,omitempty"`
	Text          string                 `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	TokenCount    int32                  `protobuf:"varint,4,opt,name=token_count,json=tokenCount,proto3" json:"token_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobChunk) Reset() {
	*x = JobChunk{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobChunk) ProtoMessage() {}

func (x *JobChunk) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobChunk.ProtoReflect.Descriptor instead.
func (*JobChunk) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{7}
}

func (x *JobChunk) GetChunkId() string {
	if x != nil {
		return x.ChunkId
	}
	return ""
}

func (x *JobChunk) GetOrdinal() int32 {
	if x != nil {
		return x.Ordinal
	}
	return 0
}

func (x *JobChunk) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *JobChunk) GetTokenCount() int32 {
	if x != nil {
		return x.TokenCount
	}
	return 0
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	Chunks        []*JobChunk            `protobuf:"bytes,2,rep,name=chunks,proto3" json:"chunks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{8}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *GetJobResponse) GetChunks() []*JobChunk {
	if x != nil {
		return x.Chunks
	}
	return nil
}

type SearchChunksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	TopK          int32                  `protobuf:"varint,2,opt,name=top_k,json=topK,proto3" json:"top_k,omitempty"`   // defaults to 5
	JobId         string                 `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"` // optional, scope search to one document
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchChunksRequest) Reset() {
	*x = SearchChunksRequest{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchChunksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchChunksRequest) ProtoMessage() {}

func (x *SearchChunksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchChunksRequest.ProtoReflect.Descriptor instead.
func (*SearchChunksRequest) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{9}
}

func (x *SearchChunksRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SearchChunksRequest) GetTopK() int32 {
	if x != nil {
		return x.TopK
	}
	return 0
}

func (x *SearchChunksRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ChunkMatch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChunkId       string                 `protobuf:"bytes,1,opt,name=chunk_id,json=chunkId,proto3" json:"chunk_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Ordinal       int32                  `protobuf:"varint,3,opt,name=ordinal,proto3" json:"ordinal,omitempty"`
	Text          string                 `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	Score         float32                `protobuf:"fixed32,5,opt,name=score,proto3" json:"score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChunkMatch) Reset() {
	*x = ChunkMatch{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChunkMatch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChunkMatch) ProtoMessage() {}

func (x *ChunkMatch) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChunkMatch.ProtoReflect.Descriptor instead.
func (*ChunkMatch) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{10}
}

func (x *ChunkMatch) GetChunkId() string {
	if x != nil {
		return x.ChunkId
	}
	return ""
}

func (x *ChunkMatch) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ChunkMatch) GetOrdinal() int32 {
	if x != nil {
		return x.Ordinal
	}
	return 0
}

func (x *ChunkMatch) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ChunkMatch) GetScore() float32 {
	if x != nil {
		return x.Score
	}
	return 0
}

type SearchChunksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Matches       []*ChunkMatch          `protobuf:"bytes,1,rep,name=matches,proto3" json:"matches,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchChunksResponse) Reset() {
	*x = SearchChunksResponse{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchChunksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchChunksResponse) ProtoMessage() {}

func (x *SearchChunksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchChunksResponse.ProtoReflect.Descriptor instead.
func (*SearchChunksResponse) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{11}
}

func (x *SearchChunksResponse) GetMatches() []*ChunkMatch {
	if x != nil {
		return x.Matches
	}
	return nil
}

type AskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Question      string                 `protobuf:"bytes,1,opt,name=question,proto3" json:"question,omitempty"`
	TopK          int32                  `protobuf:"varint,2,opt,name=top_k,json=topK,proto3" json:"top_k,omitempty"`   // retrieval depth, defaults to 5
	JobId         string                 `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"` // optional document scope
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AskRequest) Reset() {
	*x = AskRequest{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AskRequest) ProtoMessage() {}

func (x *AskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AskRequest.ProtoReflect.Descriptor instead.
func (*AskRequest) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{12}
}

func (x *AskRequest) GetQuestion() string {
	if x != nil {
		return x.Question
	}
	return ""
}

func (x *AskRequest) GetTopK() int32 {
	if x != nil {
		return x.TopK
	}
	return 0
}

func (x *AskRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type AskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Answer        string                 `protobuf:"bytes,1,opt,name=answer,proto3" json:"answer,omitempty"`
	Confidence    float32                `protobuf:"fixed32,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Sources       []*ChunkMatch          `protobuf:"bytes,3,rep,name=sources,proto3" json:"sources,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AskResponse) Reset() {
	*x = AskResponse{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AskResponse) ProtoMessage() {}

func (x *AskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AskResponse.ProtoReflect.Descriptor instead.
func (*AskResponse) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{13}
}

func (x *AskResponse) GetAnswer() string {
	if x != nil {
		return x.Answer
	}
	return ""
}

func (x *AskResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *AskResponse) GetSources() []*ChunkMatch {
	if x != nil {
		return x.Sources
	}
	return nil
}

type ExportJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsRequest) Reset() {
	*x = ExportJobsRequest{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsRequest) ProtoMessage() {}

func (x *ExportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsRequest.ProtoReflect.Descriptor instead.
func (*ExportJobsRequest) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{14}
}

func (x *ExportJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ExportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsResponse) Reset() {
	*x = ExportJobsResponse{}
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsResponse) ProtoMessage() {}

func (x *ExportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_knowledge_v1_knowledge_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsResponse.ProtoReflect.Descriptor instead.
func (*ExportJobsResponse) Descriptor() ([]byte, []int) {
	return file_knowledge_v1_knowledge_proto_rawDescGZIP(), []int{15}
}

func (x *ExportJobsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportJobsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_knowledge_v1_knowledge_proto protoreflect.FileDescriptor

const file_knowledge_v1_knowledge_proto_rawDesc = "" +
	"\n" +
	"\x1cknowledge/v1/knowledge.proto\x12\fknowledge.v1\"\x1a\n" +
	"\x18GetPipelineStatusRequest\";\n" +
	"\vStatusCount\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x03R\x05count\"N\n" +
	"\x19GetPipelineStatusResponse\x121\n" +
	"\x06counts\x18\x01 \x03(\v2\x19.knowledge.v1.StatusCountR\x06counts\"'\n" +
	"\x0fListJobsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"\xab\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06bucket\x18\x02 \x01(\tR\x06bucket\x12\x1d\n" +
	"\n" +
	"object_key\x18\x03 \x01(\tR\tobjectKey\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1a\n" +
	"\battempts\x18\x05 \x01(\x05R\battempts\x12\x1f\n" +
	"\vchunk_count\x18\x06 \x01(\x05R\n" +
	"chunkCount\x12#\n" +
	"\rfailure_stage\x18\a \x01(\tR\ffailureStage\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1f\n" +
	"\vfinished_at\x18\n" +
	" \x01(\tR\n" +
	"finishedAt\"9\n" +
	"\x10ListJobsResponse\x12%\n" +
	"\x04jobs\x18\x01 \x03(\v2\x11.knowledge.v1.JobR\x04jobs\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"t\n" +
	"\bJobChunk\x12\x19\n" +
	"\bchunk_id\x18\x01 \x01(\tR\achunkId\x12\x18\n" +
	"\aordinal\x18\x02 \x01(\x05R\aordinal\x12\x12\n" +
	"\x04text\x18\x03 \x01(\tR\x04text\x12\x1f\n" +
	"\vtoken_count\x18\x04 \x01(\x05R\n" +
	"tokenCount\"e\n" +
	"\x0eGetJobResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.knowledge.v1.JobR\x03job\x12.\n" +
	"\x06chunks\x18\x02 \x03(\v2\x16.knowledge.v1.JobChunkR\x06chunks\"W\n" +
	"\x13SearchChunksRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x13\n" +
	"\x05top_k\x18\x02 \x01(\x05R\x04topK\x12\x15\n" +
	"\x06job_id\x18\x03 \x01(\tR\x05jobId\"\x82\x01\n" +
	"\n" +
	"ChunkMatch\x12\x19\n" +
	"\bchunk_id\x18\x01 \x01(\tR\achunkId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x18\n" +
	"\aordinal\x18\x03 \x01(\x05R\aordinal\x12\x12\n" +
	"\x04text\x18\x04 \x01(\tR\x04text\x12\x14\n" +
	"\x05score\x18\x05 \x01(\x02R\x05score\"J\n" +
	"\x14SearchChunksResponse\x122\n" +
	"\amatches\x18\x01 \x03(\v2\x18.knowledge.v1.ChunkMatchR\amatches\"T\n" +
	"\n" +
	"AskRequest\x12\x1a\n" +
	"\bquestion\x18\x01 \x01(\tR\bquestion\x12\x13\n" +
	"\x05top_k\x18\x02 \x01(\x05R\x04topK\x12\x15\n" +
	"\x06job_id\x18\x03 \x01(\tR\x05jobId\"y\n" +
	"\vAskResponse\x12\x16\n" +
	"\x06answer\x18\x01 \x01(\tR\x06answer\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x02R\n" +
	"confidence\x122\n" +
	"\asources\x18\x03 \x03(\v2\x18.knowledge.v1.ChunkMatchR\asources\")\n" +
	"\x11ExportJobsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"D\n" +
	"\x12ExportJobsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xec\x03\n" +
	"\x10KnowledgeService\x12d\n" +
	"\x11GetPipelineStatus\x12&.knowledge.v1.GetPipelineStatusRequest\x1a'.knowledge.v1.GetPipelineStatusResponse\x12I\n" +
	"\bListJobs\x12\x1d.knowledge.v1.ListJobsRequest\x1a\x1e.knowledge.v1.ListJobsResponse\x12C\n" +
	"\x06GetJob\x12\x1b.knowledge.v1.GetJobRequest\x1a\x1c.knowledge.v1.GetJobResponse\x12U\n" +
	"\fSearchChunks\x12!.knowledge.v1.SearchChunksRequest\x1a\".knowledge.v1.SearchChunksResponse\x12:\n" +
	"\x03Ask\x12\x18.knowledge.v1.AskRequest\x1a\x19.knowledge.v1.AskResponse\x12O\n" +
	"\n" +
	"ExportJobs\x12\x1f.knowledge.v1.ExportJobsRequest\x1a .knowledge.v1.ExportJobsResponseBEZCgithub.com/knowledgepipe/knowledgepipe/gen/knowledge/v1;knowledgev1b\x06proto3"

var (
	file_knowledge_v1_knowledge_proto_rawDescOnce sync.Once
	file_knowledge_v1_knowledge_proto_rawDescData []byte
)

func file_knowledge_v1_knowledge_proto_rawDescGZIP() []byte {
	file_knowledge_v1_knowledge_proto_rawDescOnce.Do(func() {
		file_knowledge_v1_knowledge_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_knowledge_v1_knowledge_proto_rawDesc), len(file_knowledge_v1_knowledge_proto_rawDesc)))
	})
	return file_knowledge_v1_knowledge_proto_rawDescData
}

var file_knowledge_v1_knowledge_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_knowledge_v1_knowledge_proto_goTypes = []any{
	(*GetPipelineStatusRequest)(nil),  // 0: knowledge.v1.GetPipelineStatusRequest
	(*StatusCount)(nil),               // 1: knowledge.v1.StatusCount
	(*GetPipelineStatusResponse)(nil), // 2: knowledge.v1.GetPipelineStatusResponse
	(*ListJobsRequest)(nil),           // 3: knowledge.v1.ListJobsRequest
	(*Job)(nil),                       // 4: knowledge.v1.Job
	(*ListJobsResponse)(nil),          // 5: knowledge.v1.ListJobsResponse
	(*GetJobRequest)(nil),             // 6: knowledge.v1.GetJobRequest
	(*JobChunk)(nil),                  // 7: knowledge.v1.JobChunk
	(*GetJobResponse)(nil),            // 8: knowledge.v1.GetJobResponse
	(*SearchChunksRequest)(nil),       // 9: knowledge.v1.SearchChunksRequest
	(*ChunkMatch)(nil),                // 10: knowledge.v1.ChunkMatch
	(*SearchChunksResponse)(nil),      // 11: knowledge.v1.SearchChunksResponse
	(*AskRequest)(nil),                // 12: knowledge.v1.AskRequest
	(*AskResponse)(nil),               // 13: knowledge.v1.AskResponse
	(*ExportJobsRequest)(nil),         // 14: knowledge.v1.ExportJobsRequest
	(*ExportJobsResponse)(nil),        // 15: knowledge.v1.ExportJobsResponse
}
var file_knowledge_v1_knowledge_proto_depIdxs = []int32{
	1,  // 0: knowledge.v1.GetPipelineStatusResponse.counts:type_name -> knowledge.v1.StatusCount
	4,  // 1: knowledge.v1.ListJobsResponse.jobs:type_name -> knowledge.v1.Job
	4,  // 2: knowledge.v1.GetJobResponse.job:type_name -> knowledge.v1.Job
	7,  // 3: knowledge.v1.GetJobResponse.chunks:type_name -> knowledge.v1.JobChunk
	10, // 4: knowledge.v1.SearchChunksResponse.matches:type_name -> knowledge.v1.ChunkMatch
	10, // 5: knowledge.v1.AskResponse.sources:type_name -> knowledge.v1.ChunkMatch
	0,  // 6: knowledge.v1.KnowledgeService.GetPipelineStatus:input_type -> knowledge.v1.GetPipelineStatusRequest
	3,  // 7: knowledge.v1.KnowledgeService.ListJobs:input_type -> knowledge.v1.ListJobsRequest
	6,  // 8: knowledge.v1.KnowledgeService.GetJob:input_type -> knowledge.v1.GetJobRequest
	9,  // 9: knowledge.v1.KnowledgeService.SearchChunks:input_type -> knowledge.v1.SearchChunksRequest
	12, // 10: knowledge.v1.KnowledgeService.Ask:input_type -> knowledge.v1.AskRequest
	14, // 11: knowledge.v1.KnowledgeService.ExportJobs:input_type -> knowledge.v1.ExportJobsRequest
	2,  // 12: knowledge.v1.KnowledgeService.GetPipelineStatus:output_type -> knowledge.v1.GetPipelineStatusResponse
	5,  // 13: knowledge.v1.KnowledgeService.ListJobs:output_type -> knowledge.v1.ListJobsResponse
	8,  // 14: knowledge.v1.KnowledgeService.GetJob:output_type -> knowledge.v1.GetJobResponse
	11, // 15: knowledge.v1.KnowledgeService.SearchChunks:output_type -> knowledge.v1.SearchChunksResponse
	13, // 16: knowledge.v1.KnowledgeService.Ask:output_type -> knowledge.v1.AskResponse
	15, // 17: knowledge.v1.KnowledgeService.ExportJobs:output_type -> knowledge.v1.ExportJobsResponse
	12, // [12:18] is the sub-list for method output_type
	6,  // [6:12] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_knowledge_v1_knowledge_proto_init() }
func file_knowledge_v1_knowledge_proto_init() {
	if File_knowledge_v1_knowledge_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_knowledge_v1_knowledge_proto_rawDesc), len(file_knowledge_v1_knowledge_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_knowledge_v1_knowledge_proto_goTypes,
		DependencyIndexes: file_knowledge_v1_knowledge_proto_depIdxs,
		MessageInfos:      file_knowledge_v1_knowledge_proto_msgTypes,
	}.Build()
	File_knowledge_v1_knowledge_proto = out.File
	file_knowledge_v1_knowledge_proto_goTypes = nil
	file_knowledge_v1_knowledge_proto_depIdxs = nil
}
