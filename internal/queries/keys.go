package queries

import "jobnet_client/internal/querycache"

// Cache keys for every resource view the client reads. Keeping them in one
// place makes the invalidation edges in this package auditable.
func PostsKey() querycache.Key        { return querycache.Key{Resource: "posts"} }
func JobsKey() querycache.Key        { return querycache.Key{Resource: "jobs"} }
func ApplicationsKey() querycache.Key { return querycache.Key{Resource: "applications"} }
func MeKey() querycache.Key          { return querycache.Key{Resource: "me"} }

func JobKey(id string) querycache.Key {
	return querycache.Key{Resource: "job", Param: id}
}

func CommentsKey(postID string) querycache.Key {
	return querycache.Key{Resource: "comments", Param: postID}
}
