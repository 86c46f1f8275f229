package handlers

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/picross-server/internal/middleware"
	"github.com/vancomm/picross-server/internal/picross"
	"github.com/vancomm/picross-server/internal/repository"
)

type RecordsHandler struct {
	log  *logrus.Logger
	repo *repository.Queries
}

func NewRecordsHandler(log *logrus.Logger, db *pgxpool.Pool) *RecordsHandler {
	return &RecordsHandler{
		log:  log,
		repo: repository.New(db),
	}
}

func (h RecordsHandler) Records(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	options := []repository.GameRecordsOption{}
	if query.Has("username") {
		options = append(
			options, repository.GameRecordsForPlayer(query.Get("username")),
		)
	}
	if query.Has("seed") {
		params, err := picross.ParseSeed(query.Get("seed"))
		if err != nil {
			h.log.WithError(err).Debug("bad records seed")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		options = append(
			options, repository.GameRecordsForGameParams(*params),
		)
	}

	records, err := h.repo.GameRecords(r.Context(), options...)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to compile records")
		return
	}
	sendJSONOrLog(w, h.log, records)
}

func (h RecordsHandler) OwnRecords(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PlayerClaims(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	records, err := h.repo.GameRecords(
		r.Context(), repository.GameRecordsForPlayer(claims.Username),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to compile records")
		return
	}
	sendJSONOrLog(w, h.log, records)
}
