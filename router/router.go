package router

import (
	"drone-spot-api/handler"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(
	authMW *handler.AuthMiddleware,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	spotHandler *handler.SpotHandler,
	reviewHandler *handler.ReviewHandler,
	followHandler *handler.FollowHandler,
	courseHandler *handler.CourseHandler,
	termHandler *handler.TermHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Public auth surface. Refresh needs no middleware: the refresh token
	// itself is the credential.
	mux.Handle("POST /register", handler.ErrorHandlingMiddleware(userHandler.Register))
	mux.Handle("POST /login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /api/token/refresh", handler.ErrorHandlingMiddleware(authHandler.Refresh))
	mux.Handle("POST /api/logout", authMW.Require(handler.ErrorHandlingMiddleware(authHandler.Logout)))

	// Anonymous-permitted reads. The optional middleware injects identity
	// when a valid token is present but never rejects.
	mux.Handle("GET /profile/{uid}", authMW.Optional(handler.ErrorHandlingMiddleware(userHandler.GetProfile)))
	mux.Handle("GET /profile/{uid}/followers", handler.ErrorHandlingMiddleware(followHandler.ListFollowers))
	mux.Handle("GET /profile/{uid}/following", handler.ErrorHandlingMiddleware(followHandler.ListFollowing))
	mux.Handle("GET /spots", handler.ErrorHandlingMiddleware(spotHandler.ListSpots))
	mux.Handle("GET /spots/{id}", handler.ErrorHandlingMiddleware(spotHandler.GetSpot))
	mux.Handle("GET /spots/{id}/reviews", handler.ErrorHandlingMiddleware(reviewHandler.ListReviews))
	mux.Handle("GET /courses", handler.ErrorHandlingMiddleware(courseHandler.ListCourses))
	mux.Handle("GET /courses/{id}", handler.ErrorHandlingMiddleware(courseHandler.GetCourse))
	mux.Handle("GET /terms", handler.ErrorHandlingMiddleware(termHandler.ListTerms))

	// Authenticated writes.
	mux.Handle("POST /api/spots/{id}/like", authMW.Require(handler.ErrorHandlingMiddleware(spotHandler.LikeSpot)))
	mux.Handle("DELETE /api/spots/{id}/like", authMW.Require(handler.ErrorHandlingMiddleware(spotHandler.UnlikeSpot)))
	mux.Handle("POST /api/reviews", authMW.Require(handler.ErrorHandlingMiddleware(reviewHandler.CreateReview)))
	mux.Handle("DELETE /api/reviews/{id}", authMW.Require(handler.ErrorHandlingMiddleware(reviewHandler.DeleteReview)))
	mux.Handle("POST /api/follows/{uid}", authMW.Require(handler.ErrorHandlingMiddleware(followHandler.Follow)))
	mux.Handle("DELETE /api/follows/{uid}", authMW.Require(handler.ErrorHandlingMiddleware(followHandler.Unfollow)))
	mux.Handle("DELETE /api/user/{uid}", authMW.Require(handler.ErrorHandlingMiddleware(userHandler.DeleteUser)))

	// Admin-managed catalog.
	mux.Handle("POST /api/spots",
		authMW.Require(handler.AdminMiddleware(handler.ErrorHandlingMiddleware(spotHandler.CreateSpot))))
	mux.Handle("POST /api/courses",
		authMW.Require(handler.AdminMiddleware(handler.ErrorHandlingMiddleware(courseHandler.CreateCourse))))
	mux.Handle("POST /api/terms",
		authMW.Require(handler.AdminMiddleware(handler.ErrorHandlingMiddleware(termHandler.CreateTerm))))

	return mux
}
