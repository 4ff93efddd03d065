package controllers

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmontay/pizzeria-backoffice/internal/models"
	"github.com/lmontay/pizzeria-backoffice/internal/store"
)

// BackupController drives the persistence codec against the configured
// data file.
type BackupController struct {
	store    *store.Store
	dataFile string
}

// NewBackupController creates a backup controller bound to one data file.
func NewBackupController(s *store.Store, dataFile string) *BackupController {
	return &BackupController{store: s, dataFile: dataFile}
}

// Save godoc
// @Summary Save the whole domain state to the data file
// @Tags backup
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/backup/save [post]
func (bc *BackupController) Save(ctx *gin.Context) {
	if err := bc.store.Save(bc.dataFile); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "saved", "file": bc.dataFile})
}

// Load godoc
// @Summary Replace the in-memory state with the data file's contents
// @Description Everything in memory, including the session, is dropped first
// @Tags backup
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/backup/load [post]
func (bc *BackupController) Load(ctx *gin.Context) {
	if err := bc.store.Load(bc.dataFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "data file not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "loaded", "file": bc.dataFile})
}
