package searchsvc

import (
	"context"
	"fmt"
	"strings"

	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	playlistmodels "github.com/anurag2169/RiseStream-backend/internal/api/playlist/models"
	usermodels "github.com/anurag2169/RiseStream-backend/internal/api/user/models"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/global"
	"github.com/anurag2169/RiseStream-backend/internal/utility"

	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrEmptyQuery = common.NewValidationError("Query parameter is required", nil)

type Finder[T any] interface {
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error)
}

// Results is the combined match set of a search.
type Results struct {
	Users     []usermodels.SearchResult `json:"users"`
	Videos    []videomodels.Video       `json:"videos"`
	Playlists []playlistmodels.Playlist `json:"playlists"`
}

type SearchService struct {
	users     Finder[usermodels.SearchResult]
	videos    Finder[videomodels.Video]
	playlists Finder[playlistmodels.Playlist]
}

func NewSearchService() (*SearchService, error) {
	users, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !ok {
		return nil, fmt.Errorf("failed to get users collection: %w", common.ErrNotFound)
	}
	videos, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !ok {
		return nil, fmt.Errorf("failed to get videos collection: %w", common.ErrNotFound)
	}
	playlists, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !ok {
		return nil, fmt.Errorf("failed to get playlists collection: %w", common.ErrNotFound)
	}
	return NewSearchServiceWithStores(
		basesvc.NewBaseServiceMongo[usermodels.SearchResult](users),
		basesvc.NewBaseServiceMongo[videomodels.Video](videos),
		basesvc.NewBaseServiceMongo[playlistmodels.Playlist](playlists),
	), nil
}

func NewSearchServiceWithStores(users Finder[usermodels.SearchResult], videos Finder[videomodels.Video], playlists Finder[playlistmodels.Playlist]) *SearchService {
	return &SearchService{users: users, videos: videos, playlists: playlists}
}

// Search matches every whitespace separated term of query as a literal,
// case-insensitive substring against users, videos and playlists.
func (s *SearchService) Search(ctx context.Context, query string) (Results, error) {
	terms := utility.SearchTerms(strings.TrimSpace(query))
	if len(terms) == 0 {
		return Results{}, ErrEmptyQuery
	}
	regexes := utility.TermRegexes(terms)

	var (
		out Results
		err error
	)
	userOpts := options.Find().SetProjection(usermodels.SearchProjection())
	if out.Users, err = s.users.Find(ctx, utility.AnyFieldMatches(regexes, "fullName", "email", "username"), userOpts); err != nil {
		return Results{}, err
	}
	if out.Videos, err = s.videos.Find(ctx, utility.AnyFieldMatches(regexes, "title", "description"), nil); err != nil {
		return Results{}, err
	}
	if out.Playlists, err = s.playlists.Find(ctx, utility.AnyFieldMatches(regexes, "name", "description"), nil); err != nil {
		return Results{}, err
	}
	return out, nil
}
