// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package comment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trananh/movira/internal/social/comment"
)

// makeComment builds a comment with a creation time offset in minutes so
// ordering assertions stay readable.
func makeComment(id, subjectID string, parentID *string, minuteOffset int) *comment.Comment {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &comment.Comment{
		ID:        id,
		SubjectID: subjectID,
		AuthorID:  "user-1",
		ParentID:  parentID,
		Body:      "body of " + id,
		CreatedAt: base.Add(time.Duration(minuteOffset) * time.Minute),
	}
}

func ptr(s string) *string { return &s }

// flatten walks the forest pre-order and returns the visited IDs.
func flatten(forest []*comment.Comment) []string {
	var ids []string
	var walk func(nodes []*comment.Comment)
	walk = func(nodes []*comment.Comment) {
		for _, n := range nodes {
			ids = append(ids, n.ID)
			walk(n.Replies)
		}
	}
	walk(forest)
	return ids
}

/*
TestBuildTree_Empty yields an empty forest for empty input.
*/
func TestBuildTree_Empty(t *testing.T) {
	forest := comment.BuildTree(nil)
	assert.Empty(t, forest)
	assert.NotNil(t, forest)
}

/*
TestBuildTree_NestsRepliesUnderParents checks that every non-dangling child
appears under its actual parent and the node count is conserved.
*/
func TestBuildTree_NestsRepliesUnderParents(t *testing.T) {
	input := []*comment.Comment{
		makeComment("c1", "post-1", nil, 0),
		makeComment("c2", "post-1", nil, 1),
		makeComment("c3", "post-1", ptr("c1"), 2),
		makeComment("c4", "post-1", ptr("c3"), 3),
		makeComment("c5", "post-1", ptr("c1"), 4),
	}

	forest := comment.BuildTree(input)

	require.Len(t, forest, 2)
	assert.Equal(t, "c1", forest[0].ID)
	assert.Equal(t, "c2", forest[1].ID)

	require.Len(t, forest[0].Replies, 2)
	assert.Equal(t, "c3", forest[0].Replies[0].ID)
	assert.Equal(t, "c5", forest[0].Replies[1].ID)

	require.Len(t, forest[0].Replies[0].Replies, 1)
	assert.Equal(t, "c4", forest[0].Replies[0].Replies[0].ID)

	// Every comment appears exactly once.
	assert.ElementsMatch(t, []string{"c1", "c2", "c3", "c4", "c5"}, flatten(forest))
}

/*
TestBuildTree_PreservesCreationOrder verifies that a pre-order walk lists
comments in their relative creation order at every level.
*/
func TestBuildTree_PreservesCreationOrder(t *testing.T) {
	input := []*comment.Comment{
		makeComment("r1", "post-1", nil, 0),
		makeComment("a", "post-1", ptr("r1"), 1),
		makeComment("b", "post-1", ptr("r1"), 2),
		makeComment("r2", "post-1", nil, 3),
		makeComment("c", "post-1", ptr("r1"), 4),
	}

	forest := comment.BuildTree(input)

	require.Len(t, forest, 2)
	assert.Equal(t, []string{"r1", "a", "b", "c", "r2"}, flatten(forest))
}

/*
TestBuildTree_DanglingParentBecomesRoot surfaces a comment whose parent was
deleted (or belongs to another subject) as a visible root instead of
dropping it.
*/
func TestBuildTree_DanglingParentBecomesRoot(t *testing.T) {
	input := []*comment.Comment{
		makeComment("c1", "post-1", nil, 0),
		makeComment("orphan", "post-1", ptr("gone"), 1),
	}

	forest := comment.BuildTree(input)

	require.Len(t, forest, 2)
	assert.Equal(t, "c1", forest[0].ID)
	assert.Equal(t, "orphan", forest[1].ID)
	assert.Empty(t, forest[1].Replies)
}

/*
TestBuildTree_SingleReplyChain handles a deep chain without losing nodes.
*/
func TestBuildTree_SingleReplyChain(t *testing.T) {
	input := []*comment.Comment{
		makeComment("c1", "post-1", nil, 0),
		makeComment("c2", "post-1", ptr("c1"), 1),
		makeComment("c3", "post-1", ptr("c2"), 2),
		makeComment("c4", "post-1", ptr("c3"), 3),
	}

	forest := comment.BuildTree(input)

	require.Len(t, forest, 1)
	assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, flatten(forest))

	node := forest[0]
	for _, expected := range []string{"c2", "c3", "c4"} {
		require.Len(t, node.Replies, 1)
		node = node.Replies[0]
		assert.Equal(t, expected, node.ID)
	}
	assert.Empty(t, node.Replies)
}
