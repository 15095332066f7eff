package main

import "net/http"

// adminOverviewHandler godoc
//
//	@Summary		Moderation overview
//	@Description	Returns platform totals: users, doctors, reviews and per-department doctor counts.
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	admindashboard.Overview
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/overview [get]
func (app *application) adminOverviewHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := app.store.AdminDashboard.GetOverview(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, overview); err != nil {
		app.internalServerError(w, r, err)
	}
}
