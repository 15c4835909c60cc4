package postgres

var Classify = classify
