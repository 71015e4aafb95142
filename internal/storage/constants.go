package storage

const FILE_EXTENTION = ".sqlite"
