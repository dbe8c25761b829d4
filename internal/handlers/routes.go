package handlers

import (
	"github.com/gorilla/mux"
)

// SetupRoutes wires every handler into the application router. API routes
// are registered before the static catch-all so they always win.
func SetupRoutes(
	presentationHandler *PresentationHandler,
	elementHandler *ElementHandler,
	libraryHandler *LibraryHandler,
	templateHandler *TemplateHandler,
	wsHandler *WebSocketHandler,
	staticHandler *StaticHandler,
) *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()

	// Presentation routes
	api.HandleFunc("/presentation", presentationHandler.GetPresentation).Methods("GET")
	api.HandleFunc("/presentation/slides", presentationHandler.AddSlide).Methods("POST")
	api.HandleFunc("/presentation/slides/reorder", presentationHandler.ReorderSlides).Methods("POST")
	api.HandleFunc("/presentation/slides/{slideId}", presentationHandler.DeleteSlide).Methods("DELETE")
	api.HandleFunc("/presentation/slides/{slideId}/duplicate", presentationHandler.DuplicateSlide).Methods("POST")
	api.HandleFunc("/presentation/current-slide", presentationHandler.SetCurrentSlide).Methods("PUT")

	// Element routes
	api.HandleFunc("/presentation/slides/{slideId}/elements", elementHandler.AddElement).Methods("POST")
	api.HandleFunc("/presentation/slides/{slideId}/elements/{elementId}", elementHandler.UpdateElement).Methods("PATCH")
	api.HandleFunc("/presentation/slides/{slideId}/elements/{elementId}", elementHandler.DeleteElement).Methods("DELETE")
	api.HandleFunc("/presentation/selected-element", elementHandler.SetSelectedElement).Methods("PUT")
	api.HandleFunc("/presentation/slides/{slideId}/elements/{elementId}/bring-to-front", elementHandler.BringToFront).Methods("POST")
	api.HandleFunc("/presentation/slides/{slideId}/elements/{elementId}/send-to-back", elementHandler.SendToBack).Methods("POST")

	// Template routes
	api.HandleFunc("/templates", templateHandler.ListTemplates).Methods("GET")
	api.HandleFunc("/presentation/slides/{slideId}/populate", templateHandler.PopulateSlide).Methods("POST")

	// Slide library routes
	api.HandleFunc("/library", libraryHandler.ListSavedSlides).Methods("GET")
	api.HandleFunc("/library", libraryHandler.SaveSlide).Methods("POST")
	api.HandleFunc("/library/{savedSlideId}", libraryHandler.DeleteSavedSlide).Methods("DELETE")
	api.HandleFunc("/library/{savedSlideId}/insert", libraryHandler.InsertSavedSlide).Methods("POST")

	// Websocket endpoint for live state updates
	router.HandleFunc("/ws", wsHandler.HandleWebSocket)

	// Everything else is the editor UI
	router.PathPrefix("/").Handler(staticHandler)

	return router
}
