package playlistsvc

import (
	"context"
	"testing"

	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	playlistdto "github.com/anurag2169/RiseStream-backend/internal/api/playlist/dto"
	playlistmodels "github.com/anurag2169/RiseStream-backend/internal/api/playlist/models"
	usermodels "github.com/anurag2169/RiseStream-backend/internal/api/user/models"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/utility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memoryPlaylistStore evaluates the filters PlaylistService issues.
type memoryPlaylistStore struct {
	playlists map[primitive.ObjectID]playlistmodels.Playlist
	videos    map[primitive.ObjectID]videomodels.VideoView
	users     map[primitive.ObjectID]usermodels.OwnerSummary
}

func newMemoryPlaylistStore() *memoryPlaylistStore {
	return &memoryPlaylistStore{
		playlists: map[primitive.ObjectID]playlistmodels.Playlist{},
		videos:    map[primitive.ObjectID]videomodels.VideoView{},
		users:     map[primitive.ObjectID]usermodels.OwnerSummary{},
	}
}

func (m *memoryPlaylistStore) InsertOne(_ context.Context, p playlistmodels.Playlist) (playlistmodels.Playlist, error) {
	p.ID = primitive.NewObjectID()
	m.playlists[p.ID] = p
	return p, nil
}

func (m *memoryPlaylistStore) FindOneAndUpdate(_ context.Context, filter interface{}, u basesvc.UpdateData) (playlistmodels.Playlist, error) {
	f := filter.(bson.M)
	p, ok := m.playlists[f["_id"].(primitive.ObjectID)]
	if !ok {
		return p, common.ErrNotFound
	}
	switch cond := f["videos"].(type) {
	case bson.M:
		if utility.ContainsObjectID(p.Videos, cond["$ne"].(primitive.ObjectID)) {
			return playlistmodels.Playlist{}, common.ErrNotFound
		}
	case primitive.ObjectID:
		if !utility.ContainsObjectID(p.Videos, cond) {
			return playlistmodels.Playlist{}, common.ErrNotFound
		}
	}
	if v, ok := u.Push["videos"]; ok {
		p.Videos = append(p.Videos, v.(primitive.ObjectID))
	}
	if v, ok := u.Pull["videos"]; ok {
		kept := []primitive.ObjectID{}
		for _, id := range p.Videos {
			if id != v.(primitive.ObjectID) {
				kept = append(kept, id)
			}
		}
		p.Videos = kept
	}
	m.playlists[p.ID] = p
	return p, nil
}

func (m *memoryPlaylistStore) UpdateById(_ context.Context, id primitive.ObjectID, u basesvc.UpdateData) (playlistmodels.Playlist, error) {
	p, ok := m.playlists[id]
	if !ok {
		return p, common.ErrNotFound
	}
	p.Name = u.Set["name"].(string)
	p.Description = u.Set["description"].(string)
	m.playlists[id] = p
	return p, nil
}

func (m *memoryPlaylistStore) DeleteById(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.playlists[id]; !ok {
		return common.ErrNotFound
	}
	delete(m.playlists, id)
	return nil
}

func (m *memoryPlaylistStore) DocumentExists(_ context.Context, filter interface{}) (bool, error) {
	_, ok := m.playlists[filter.(bson.M)["_id"].(primitive.ObjectID)]
	return ok, nil
}

func (m *memoryPlaylistStore) AggregateSummaries(context.Context, mongo.Pipeline) ([]playlistmodels.PlaylistSummary, error) {
	return []playlistmodels.PlaylistSummary{}, nil
}

// AggregateDetails returns joined videos in reverse membership order, the
// way $lookup is free to.
func (m *memoryPlaylistStore) AggregateDetails(_ context.Context, p mongo.Pipeline) ([]playlistmodels.PlaylistDetail, error) {
	id := p[0][0].Value.(bson.D).Map()["_id"].(primitive.ObjectID)
	pl, ok := m.playlists[id]
	if !ok {
		return []playlistmodels.PlaylistDetail{}, nil
	}
	detail := playlistmodels.PlaylistDetail{ID: pl.ID, Name: pl.Name, Description: pl.Description, Members: pl.Videos, Owner: m.users[pl.Owner]}
	for i := len(pl.Videos) - 1; i >= 0; i-- {
		if v, ok := m.videos[pl.Videos[i]]; ok {
			detail.Videos = append(detail.Videos, v)
		}
	}
	return []playlistmodels.PlaylistDetail{detail}, nil
}

func TestPlaylistScenario(t *testing.T) {
	ctx := context.Background()
	store := newMemoryPlaylistStore()
	svc := NewPlaylistServiceWithStore(store)

	user := usermodels.OwnerSummary{ID: primitive.NewObjectID(), FullName: "U", Username: "u"}
	store.users[user.ID] = user
	uploader := usermodels.OwnerSummary{ID: primitive.NewObjectID(), FullName: "Creator"}
	v1 := videomodels.VideoView{ID: primitive.NewObjectID(), Title: "V1", Owner: uploader}
	v2 := videomodels.VideoView{ID: primitive.NewObjectID(), Title: "V2", Owner: uploader}
	store.videos[v1.ID] = v1
	store.videos[v2.ID] = v2

	playlist, err := svc.Create(ctx, user.ID, playlistdto.PlaylistInput{Name: "Favorites", Description: "x"})
	require.NoError(t, err)
	assert.NotNil(t, playlist.Videos)

	_, err = svc.AddVideo(ctx, playlist.ID, v1.ID)
	require.NoError(t, err)

	detail, err := svc.GetByID(ctx, playlist.ID)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 1)
	assert.Equal(t, v1.ID, detail.Videos[0].ID)
	assert.Equal(t, "Creator", detail.Videos[0].Owner.FullName)
	assert.Equal(t, user, detail.Owner)

	_, err = svc.AddVideo(ctx, playlist.ID, v1.ID)
	assert.ErrorIs(t, err, ErrAlreadyMember)
	assert.Equal(t, common.StatusConflict, common.AsError(err).StatusCode)

	_, err = svc.AddVideo(ctx, playlist.ID, v2.ID)
	require.NoError(t, err)
	detail, err = svc.GetByID(ctx, playlist.ID)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 2)
	assert.Equal(t, []primitive.ObjectID{v1.ID, v2.ID}, []primitive.ObjectID{detail.Videos[0].ID, detail.Videos[1].ID})
}

func TestRemoveVideo(t *testing.T) {
	ctx := context.Background()
	store := newMemoryPlaylistStore()
	svc := NewPlaylistServiceWithStore(store)
	video := primitive.NewObjectID()

	playlist, err := svc.Create(ctx, primitive.NewObjectID(), playlistdto.PlaylistInput{Name: "n", Description: "d"})
	require.NoError(t, err)

	_, err = svc.RemoveVideo(ctx, playlist.ID, video)
	assert.ErrorIs(t, err, ErrNotMember)

	_, err = svc.AddVideo(ctx, playlist.ID, video)
	require.NoError(t, err)
	updated, err := svc.RemoveVideo(ctx, playlist.ID, video)
	require.NoError(t, err)
	assert.Empty(t, updated.Videos)

	_, err = svc.RemoveVideo(ctx, primitive.NewObjectID(), video)
	assert.ErrorIs(t, err, ErrPlaylistNotFound)
	_, err = svc.AddVideo(ctx, primitive.NewObjectID(), video)
	assert.ErrorIs(t, err, ErrPlaylistNotFound)
}

func TestCreateUpdateDeleteValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewPlaylistServiceWithStore(newMemoryPlaylistStore())

	_, err := svc.Create(ctx, primitive.NewObjectID(), playlistdto.PlaylistInput{Name: " ", Description: "d"})
	assert.Equal(t, common.StatusBadRequest, common.AsError(err).StatusCode)

	playlist, err := svc.Create(ctx, primitive.NewObjectID(), playlistdto.PlaylistInput{Name: " Mix ", Description: " d "})
	require.NoError(t, err)
	assert.Equal(t, "Mix", playlist.Name)

	_, err = svc.Update(ctx, playlist.ID, playlistdto.PlaylistInput{Name: "Mix", Description: ""})
	assert.Equal(t, common.StatusBadRequest, common.AsError(err).StatusCode)

	updated, err := svc.Update(ctx, playlist.ID, playlistdto.PlaylistInput{Name: "Mix 2", Description: "d2"})
	require.NoError(t, err)
	assert.Equal(t, "Mix 2", updated.Name)

	require.NoError(t, svc.Delete(ctx, playlist.ID))
	assert.ErrorIs(t, svc.Delete(ctx, playlist.ID), ErrPlaylistNotFound)
	_, err = svc.GetByID(ctx, playlist.ID)
	assert.ErrorIs(t, err, ErrPlaylistNotFound)
}

func TestOrderByMembersSkipsMissing(t *testing.T) {
	a, b, gone := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	videos := []videomodels.Video{{ID: b}, {ID: a}}
	ordered := orderByMembers([]primitive.ObjectID{a, gone, b}, videos, func(v videomodels.Video) primitive.ObjectID { return v.ID })
	require.Len(t, ordered, 2)
	assert.Equal(t, a, ordered[0].ID)
	assert.Equal(t, b, ordered[1].ID)
}

func TestPlaylistDetailPipelineJoinsVideoOwners(t *testing.T) {
	p := playlistDetailPipeline(primitive.NewObjectID())
	var videoLookup bson.M
	for _, stage := range p {
		if stage[0].Key == "$lookup" {
			def := stage[0].Value.(bson.D).Map()
			if def["from"] == "videos" {
				videoLookup = def
			}
		}
	}
	require.NotNil(t, videoLookup)
	nested := videoLookup["pipeline"].(bson.A)
	assert.Equal(t, "$lookup", nested[0].(bson.D)[0].Key)
}
