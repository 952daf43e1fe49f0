package handlers

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	pb "github.com/questhub/services-multimedia/api"
	"github.com/questhub/services-multimedia/apperror"
	"github.com/questhub/services-multimedia/logging"
	"github.com/questhub/services-multimedia/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type GrpcHandler struct {
	uploadService   services.UploadService
	downloadService services.DownloadService
	pb.UnimplementedMultimediaServiceServer

	logger logging.Logger
}

func NewGrpcHandler(uploadSvc services.UploadService, downloadSvc services.DownloadService, l logging.Logger) *GrpcHandler {
	return &GrpcHandler{
		uploadService:   uploadSvc,
		downloadService: downloadSvc,
		logger:          l,
	}
}

// Upload drains the chunk stream into a session and commits it when the
// client half-closes. The transport delivers chunks in order, one at a
// time, so the session sees a single sequential writer.
func (h *GrpcHandler) Upload(stream pb.MultimediaService_UploadServer) error {
	session := services.NewUploadSession()
	sessionID := uuid.NewString()

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			if isCancellation(err) {
				// Caller aborted; expected behavior, not a fault. Nothing
				// was committed and nothing will be.
				h.logger.Info("upload cancelled by caller",
					"session_id", sessionID, "post_id", session.PostID())
				return status.Error(codes.Canceled, "upload cancelled")
			}
			h.logger.Error("upload stream receive failed", "session_id", sessionID, "error", err)
			return err
		}

		chunk := services.Chunk{
			PostID:      req.GetPostId(),
			Filename:    req.GetFilename(),
			ContentType: req.GetContentType(),
			Data:        req.GetData(),
		}
		if err := session.Append(chunk); err != nil {
			h.logger.Error("rejected upload chunk",
				"session_id", sessionID, "post_id", session.PostID(), "error", err)
			return apperror.ToStatus(err)
		}
	}

	rec, err := h.uploadService.Commit(stream.Context(), session)
	if err != nil {
		h.logger.Error("upload commit failed",
			"session_id", sessionID, "post_id", session.PostID(), "error", err)
		return apperror.ToStatus(err)
	}

	return stream.SendAndClose(&pb.UploadResponse{Url: rec.FileURL})
}

func (h *GrpcHandler) Download(ctx context.Context, req *pb.DownloadRequest) (*pb.DownloadResponse, error) {
	items, err := h.downloadService.Get(ctx, req.GetPostId())
	if err != nil {
		h.logger.Error("download failed", "post_id", req.GetPostId(), "error", err)
		return nil, apperror.ToStatus(err)
	}

	pbItems := make([]*pb.MultimediaItem, len(items))
	for i, item := range items {
		pbItems[i] = &pb.MultimediaItem{
			Filename:         item.Filename,
			OriginalFilename: item.OriginalFilename,
			ContentType:      item.ContentType,
			FileUrl:          item.FileURL,
			Data:             item.Data,
			UploadedAt:       timestamppb.New(item.UploadedAt),
		}
	}

	return &pb.DownloadResponse{Items: pbItems}, nil
}

func isCancellation(err error) bool {
	if errors.Is(err, context.Canceled) {
		return true
	}
	return status.Code(err) == codes.Canceled
}
